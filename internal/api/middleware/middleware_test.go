package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeys(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AccessTokenSecret = "access-secret"
	config.RefreshTokenSecret = "refresh-secret"
	Init()
}

func protectedRouter(roles ...user.Role) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{AccessTokenMiddleware()}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.String(http.StatusOK, claims.UserID)
	})
	r.GET("/private", chain...)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAccessTokenMiddleware(t *testing.T) {
	setupKeys(t)
	r := protectedRouter()

	token, err := GenerateAccessToken("user-1", user.RoleUser)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: config.AccessCookieName, Value: token})
		rec := serve(r, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, _, err := GenerateRefreshToken("user-1", 0)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &types.Claims{
			UserID: "user-1",
			Role:   user.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(accessKey)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: config.AccessCookieName, Value: expired})
		assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		claims := &types.Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+none)
		assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
	})
}

func TestRequireRole(t *testing.T) {
	setupKeys(t)
	r := protectedRouter(user.RoleAdmin, user.RoleModerator)

	for _, tc := range []struct {
		role user.Role
		want int
	}{
		{user.RoleAdmin, http.StatusOK},
		{user.RoleModerator, http.StatusOK},
		{user.RoleUser, http.StatusForbidden},
	} {
		token, err := GenerateAccessToken("u", tc.role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: config.AccessCookieName, Value: token})
		assert.Equal(t, tc.want, serve(r, req).Code, string(tc.role))
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setupKeys(t)

	raw, expiresAt, err := GenerateRefreshToken("user-9", 3)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(config.RefreshTokenTTL), expiresAt, 5*time.Second)

	claims, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.UserID)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.NotEmpty(t, claims.ID)

	other, _, err := GenerateRefreshToken("user-9", 3)
	require.NoError(t, err)
	assert.NotEqual(t, raw, other)

	_, err = ParseAccessToken(raw)
	assert.Error(t, err)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Origin = "http://localhost:5173"
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := serve(r, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = serve(r, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
