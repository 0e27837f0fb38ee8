package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func setAuthCookies(c *gin.Context, pair application.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.AccessCookieName, pair.AccessToken, int(config.AccessTokenTTL.Seconds()), "/", "", config.IsProduction, true)
	c.SetCookie(config.RefreshCookieName, pair.RefreshToken, int(config.RefreshTokenTTL.Seconds()), config.RefreshCookiePath, "", config.IsProduction, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.AccessCookieName, "", -1, "/", "", config.IsProduction, true)
	c.SetCookie(config.RefreshCookieName, "", -1, config.RefreshCookiePath, "", config.IsProduction, true)
}

// Login godoc
// @Summary User login
// @Description Sets the accessToken and refreshToken cookies on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.SuccessResponse{data=user.PublicUser}
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	u, pair, err := h.svc.Login(input)
	if err != nil {
		writeError(c, "Login", err)
		return
	}
	setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, "Login successful", u.Public())
}

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Account"
// @Success 201 {object} response.SuccessResponse{data=user.PublicUser}
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 409 {object} response.ErrorResponse "Email already in use"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if !bindJSON(c, &input) {
		return
	}
	u, pair, err := h.svc.Register(input)
	if err != nil {
		writeError(c, "Register", err)
		return
	}
	setAuthCookies(c, pair)
	response.Success(c, http.StatusCreated, "Registration successful", u.Public())
}

// Refresh godoc
// @Summary Rotate the refresh token
// @Description Reads the refreshToken cookie, revokes it and issues a new pair.
// @Tags auth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=user.AccessTokenDTO}
// @Failure 401 {object} response.ErrorResponse "Refresh token missing"
// @Failure 403 {object} response.ErrorResponse "Refresh token invalid"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	raw, _ := c.Cookie(config.RefreshCookieName)
	pair, err := h.svc.Refresh(raw)
	if err != nil {
		writeError(c, "Refresh", err)
		return
	}
	setAuthCookies(c, pair)
	response.Success(c, http.StatusOK, "Token refreshed", user.AccessTokenDTO{AccessToken: pair.AccessToken})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the refresh token if known and clears both cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// refreshToken is only sent by browsers to /auth/refresh; also accept it from the body.
	raw, err := c.Cookie(config.RefreshCookieName)
	if err != nil || raw == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.ShouldBindJSON(&body)
		raw = body.RefreshToken
	}
	h.svc.Logout(raw)
	clearAuthCookies(c)
	response.Success(c, http.StatusOK, "Logout successful", nil)
}

// LogoutAll godoc
// @Summary Revoke every session of the current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}
	if err := h.svc.LogoutAll(userID); err != nil {
		writeError(c, "Logout all", err)
		return
	}
	clearAuthCookies(c)
	response.Success(c, http.StatusOK, "All sessions revoked", nil)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=user.PublicUser}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}
	u, err := h.svc.Me(userID)
	if err != nil {
		writeError(c, "Fetch user", err)
		return
	}
	response.Success(c, http.StatusOK, "User fetched", u.Public())
}
