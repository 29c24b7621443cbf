package service

import (
	"context"
	"testing"
	"time"

	"lawmatters-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() (*AuthService, *memoryUserRepo, *memorySessionRepo) {
	userRepo := newMemoryUserRepo()
	sessionRepo := newMemorySessionRepo()
	svc := NewAuthService(userRepo, sessionRepo, 7*24*time.Hour, zap.NewNop())
	return svc, userRepo, sessionRepo
}

func TestSignup(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Jane@Firm.Example", "secret1", "Doe & Partners")
	require.NoError(t, err)

	assert.Equal(t, "jane@firm.example", user.Email, "email is lowercased")
	assert.Equal(t, models.RoleLawyer, user.Role, "signups always get the Lawyer role")
	assert.Equal(t, "Doe & Partners", user.FirmName)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestSignupValidation(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "not-an-email", "secret1", "Firm")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Signup(ctx, "jane@firm.example", "short", "Firm")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	assert.Empty(t, userRepo.users, "failed signups leave no rows behind")
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@firm.example", "secret1", "Firm A")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "JANE@firm.example", "secret2", "Firm B")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, userRepo.users, 1)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@firm.example", "secret1", "Firm")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "jane@firm.example", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@firm.example", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "jane@firm.example", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		resolved, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
	})
}

func TestAuthenticateSlidesExpiry(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@firm.example", "secret1", "Firm")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "jane@firm.example", "secret1")
	require.NoError(t, err)

	session, err := sessionRepo.GetByTokenHash(ctx, hashToken(token))
	require.NoError(t, err)
	before := session.ExpiresAt

	time.Sleep(10 * time.Millisecond)
	_, err = svc.Authenticate(ctx, token)
	require.NoError(t, err)

	session, err = sessionRepo.GetByTokenHash(ctx, hashToken(token))
	require.NoError(t, err)
	assert.True(t, session.ExpiresAt.After(before), "expiry window slides on use")
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@firm.example", "secret1", "Firm")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "jane@firm.example", "secret1")
	require.NoError(t, err)

	// Force the session past its window.
	sessionRepo.sessions[hashToken(token)].ExpiresAt = time.Now().UTC().Add(-time.Minute)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, sessionRepo.sessions, "expired session is purged on touch")
}

func TestAuthenticateUnknownToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Authenticate(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLogout(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "jane@firm.example", "secret1", "Firm")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "jane@firm.example", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@legalmatters.com", "admin-secret"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@legalmatters.com", "different-secret"))

	assert.Len(t, userRepo.users, 1)

	admin, err := userRepo.GetByEmail(ctx, "admin@legalmatters.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// The first password still works; the second call changed nothing.
	_, _, err = svc.Login(ctx, "admin@legalmatters.com", "admin-secret")
	assert.NoError(t, err)
}
