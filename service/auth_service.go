package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"lawmatters-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserRepo is the minimal user repository needed by the auth service.
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SessionRepo is the minimal session repository needed by the auth service.
type SessionRepo interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	ExtendExpiry(ctx context.Context, tokenHash string, expiresAt time.Time) error
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}

// AuthService implements signup, login, logout, and session resolution.
// Sessions are opaque random tokens carried in an HttpOnly cookie; only
// their SHA-256 hashes are stored, and the expiry window slides on use.
type AuthService struct {
	userRepo    UserRepo
	sessionRepo SessionRepo
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(userRepo UserRepo, sessionRepo SessionRepo, sessionTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Signup creates a user with role Lawyer. It does not establish a session;
// callers log in afterwards.
func (s *AuthService) Signup(ctx context.Context, email, password, firmName string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirmName:     firmName,
		Role:         models.RoleLawyer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("email", email))
	return user, nil
}

// Login verifies credentials and establishes a new session. The returned
// token is the plaintext cookie value; it is never stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, "", err
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", zap.String("email", email))
	return user, token, nil
}

// Authenticate resolves a session token to its user and slides the
// session's expiry forward. Expired sessions are purged on touch.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	tokenHash := hashToken(token)
	session, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrUnauthenticated
	}

	now := time.Now().UTC()
	if session.Expired(now) {
		if err := s.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			s.logger.Warn("failed to purge expired session", zap.Error(err))
		}
		return nil, ErrUnauthenticated
	}

	if err := s.sessionRepo.ExtendExpiry(ctx, tokenHash, now.Add(s.sessionTTL)); err != nil {
		s.logger.Warn("failed to extend session expiry", zap.Error(err))
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

// Logout invalidates the session named by the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByTokenHash(ctx, hashToken(token))
}

// EnsureAdmin creates the bootstrap admin user if it does not already
// exist. Idempotent; run once before serving traffic.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirmName:     "Legal Matters Admin",
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("admin user seeded", zap.String("email", email))
	return nil
}

// SessionTTL exposes the configured sliding window, used when setting the
// cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
