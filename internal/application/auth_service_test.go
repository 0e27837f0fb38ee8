package application_test

import (
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/Sahindou/ifrit-ticket/internal/api/middleware"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/internal/domain/token"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/internal/repository/mock"
	"github.com/Sahindou/ifrit-ticket/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuth(t *testing.T) (*application.AuthService, *repository.Repos) {
	config.AccessTokenSecret = "access-secret-for-tests"
	config.RefreshTokenSecret = "refresh-secret-for-tests"
	config.Issuer = "ifrit-ticket-test"
	middleware.Init()

	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	return application.NewAuthService(repos), repos
}

func register(t *testing.T, svc *application.AuthService) (user.User, application.TokenPair) {
	u, pair, err := svc.Register(user.RegisterInput{Email: "jane@example.com", Password: "password123", Pseudo: "jane"})
	require.NoError(t, err)
	return u, pair
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, repos := setupAuth(t)

	u, pair := register(t, svc)
	assert.Equal(t, user.RoleUser, u.Role)
	assert.Equal(t, 0, u.TokenVersion)
	assert.NotEqual(t, "password123", u.Password)
	assert.NotEmpty(t, pair.AccessToken)

	known, err := repos.RefreshToken.RefreshTokenExists(token.Hash(pair.RefreshToken))
	require.NoError(t, err)
	assert.True(t, known)

	claims, err := middleware.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, user.RoleUser, claims.Role)
	assert.WithinDuration(t, time.Now().Add(config.AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)

	_, _, err = svc.Register(user.RegisterInput{Email: "jane@example.com", Password: "password123", Pseudo: "other"})
	assert.ErrorIs(t, err, application.ErrEmailTaken)

	logged, pair2, err := svc.Login(user.LoginInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.NotEqual(t, pair.RefreshToken, pair2.RefreshToken)

	_, _, err = svc.Login(user.LoginInput{Email: "jane@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
	_, _, err = svc.Login(user.LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestAuthService_TrimsPassword(t *testing.T) {
	svc, _ := setupAuth(t)

	_, _, err := svc.Register(user.RegisterInput{Email: " sam@example.com ", Password: "  secret99  ", Pseudo: " sam "})
	require.NoError(t, err)

	u, _, err := svc.Login(user.LoginInput{Email: "sam@example.com", Password: "secret99"})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", u.Email)
	assert.Equal(t, "sam", u.Pseudo)

	_, _, err = svc.Login(user.LoginInput{Email: "sam@example.com", Password: " secret99 "})
	assert.NoError(t, err)
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		svc, _ := setupAuth(t)
		_, err := svc.Refresh("")
		assert.ErrorIs(t, err, application.ErrMissingRefreshToken)
	})

	t.Run("rotation revokes the old token", func(t *testing.T) {
		svc, repos := setupAuth(t)
		_, pair := register(t, svc)

		next, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

		known, err := repos.RefreshToken.RefreshTokenExists(token.Hash(pair.RefreshToken))
		require.NoError(t, err)
		assert.False(t, known)

		_, err = svc.Refresh(pair.RefreshToken)
		assert.ErrorIs(t, err, application.ErrRefreshTokenInvalid)

		_, err = svc.Refresh(next.RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("validly signed but unknown token is rejected", func(t *testing.T) {
		svc, _ := setupAuth(t)
		u, _ := register(t, svc)

		forged, _, err := middleware.GenerateRefreshToken(u.ID, u.TokenVersion)
		require.NoError(t, err)
		_, err = svc.Refresh(forged)
		assert.ErrorIs(t, err, application.ErrRefreshTokenInvalid)
	})

	t.Run("version mismatch revokes", func(t *testing.T) {
		svc, repos := setupAuth(t)
		u, pair := register(t, svc)
		require.NoError(t, repos.User.IncrementTokenVersion(u.ID))

		_, err := svc.Refresh(pair.RefreshToken)
		assert.ErrorIs(t, err, application.ErrRefreshTokenInvalid)

		known, err := repos.RefreshToken.RefreshTokenExists(token.Hash(pair.RefreshToken))
		require.NoError(t, err)
		assert.False(t, known)
	})

	t.Run("concurrent rotation succeeds once", func(t *testing.T) {
		svc, _ := setupAuth(t)
		_, pair := register(t, svc)

		const workers = 8
		var wg sync.WaitGroup
		results := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Refresh(pair.RefreshToken)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		ok := 0
		for err := range results {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, application.ErrRefreshTokenInvalid)
		}
		assert.Equal(t, 1, ok)
	})
}

func TestAuthService_LogoutAndMe(t *testing.T) {
	svc, repos := setupAuth(t)
	u, pair := register(t, svc)

	svc.Logout("")
	svc.Logout("not-a-token")
	svc.Logout(pair.RefreshToken)

	known, err := repos.RefreshToken.RefreshTokenExists(token.Hash(pair.RefreshToken))
	require.NoError(t, err)
	assert.False(t, known)

	me, err := svc.Me(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", me.Email)

	_, err = svc.Me("5d2b8c1e-7f3a-4e6b-9c0d-1a2b3c4d5e6f")
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestAuthService_LogoutAll(t *testing.T) {
	svc, repos := setupAuth(t)
	u, first := register(t, svc)
	_, second, err := svc.Login(user.LoginInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(u.ID))

	for _, raw := range []string{first.RefreshToken, second.RefreshToken} {
		_, err := svc.Refresh(raw)
		assert.ErrorIs(t, err, application.ErrRefreshTokenInvalid)
	}

	reloaded, err := repos.User.GetUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TokenVersion)

	// Tokens issued after the bump carry the new version and keep working.
	_, fresh, err := svc.Login(user.LoginInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	_, err = svc.Refresh(fresh.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_RefreshUserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	config.RefreshTokenSecret = "refresh-secret-for-tests"
	middleware.Init()

	mockUser := mock.NewMockUserRepo(ctrl)
	mockToken := mock.NewMockRefreshTokenRepo(ctrl)
	svc := application.NewAuthService(&repository.Repos{User: mockUser, RefreshToken: mockToken})

	raw, _, err := middleware.GenerateRefreshToken("5d2b8c1e-7f3a-4e6b-9c0d-1a2b3c4d5e6f", 0)
	require.NoError(t, err)

	mockToken.EXPECT().RefreshTokenExists(token.Hash(raw)).Return(true, nil)
	mockUser.EXPECT().GetUserByID("5d2b8c1e-7f3a-4e6b-9c0d-1a2b3c4d5e6f").Return(user.User{}, gorm.ErrRecordNotFound)

	_, err = svc.Refresh(raw)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestAuthService_PurgeExpiredTokens(t *testing.T) {
	svc, repos := setupAuth(t)
	u, _ := register(t, svc)
	require.NoError(t, repos.RefreshToken.SaveRefreshToken(&token.RefreshToken{
		TokenHash: token.Hash("old"),
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	n, err := svc.PurgeExpiredTokens()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
