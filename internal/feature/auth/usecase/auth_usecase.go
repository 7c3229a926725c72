package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"calendar_backend/internal/feature/auth/domain"
	"calendar_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum number of characters for a password.
	minPasswordLength = 8

	// maxSessionsPerUser caps the number of concurrent sessions a user may hold.
	// When the cap is reached, the oldest session is evicted on login.
	maxSessionsPerUser = 5
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns domain.ErrNameAlreadyExists if a user with the same name already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByName retrieves a user matching the specified login name.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator defines the interface for access token generation.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, name string) (string, error)
}

// LoginResult carries the credentials issued by a successful login or refresh.
type LoginResult struct {
	UserID       uint
	Name         string
	Token        string
	RefreshToken string
}

// AuthUsecase implements the authentication business logic.
type AuthUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenGenerator
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase.
// If sessionTTL is zero or negative, it defaults to 30 days.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, sessionTTL time.Duration) *AuthUsecase {
	if sessionTTL <= 0 {
		sessionTTL = 30 * 24 * time.Hour
	}
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a bcrypt-hashed password and returns the new user's ID.
// The plaintext password is never stored; bcrypt embeds a per-password salt in the hash.
func (u *AuthUsecase) Signup(ctx context.Context, name, password string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("name must not be empty")
	}
	if err := validatePassword(password); err != nil {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Name: name, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login authenticates a user and returns an access token plus a refresh-token session.
// To prevent timing attacks, the bcrypt comparison runs even when the user does not exist.
func (u *AuthUsecase) Login(ctx context.Context, name, password, userAgent, ipAddress string) (*LoginResult, error) {
	user, err := u.users.FindByName(ctx, name)

	// Dummy hash so bcrypt.CompareHashAndPassword is always called,
	// keeping the response time independent of user existence.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Unknown user and wrong password are indistinguishable to the caller.
	if err != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session, err := u.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:       user.ID,
		Name:         user.Name,
		Token:        token,
		RefreshToken: session.ID,
	}, nil
}

// Refresh rotates a refresh-token session and issues a new access token.
// The presented session is revoked regardless of outcome once it has been located.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*LoginResult, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	next, err := u.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:       user.ID,
		Name:         user.Name,
		Token:        token,
		RefreshToken: next.ID,
	}, nil
}

// Logout revokes the session identified by the refresh token.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return ErrInvalidRefreshToken
	}
	return u.sessions.Revoke(ctx, refreshToken)
}

// createSession persists a new session, evicting the oldest one when the per-user cap is reached.
func (u *AuthUsecase) createSession(ctx context.Context, userID uint, userAgent, ipAddress string) (*entity.Session, error) {
	count, err := u.sessions.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
			return nil, fmt.Errorf("failed to evict oldest session: %w", err)
		}
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// newSessionID returns a cryptographically random 64-character hex string.
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
