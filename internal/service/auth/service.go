package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/dripdrop-backend/internal/auth"
	"github.com/heartmarshall/dripdrop-backend/internal/config"
	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/validation"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// authMethodRepo defines the auth method repository interface needed by auth service.
type authMethodRepo interface {
	GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.AccessToken, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	tokens      tokenRepo
	authMethods authMethodRepo
	tx          txManager
	jwt         jwtManager
	validate    *validation.Validator
	cfg         config.AuthConfig
	now         func() time.Time

	// decoyHash is compared against when the email is unknown, so a failed
	// login costs one bcrypt round either way.
	decoyHash func() []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	authMethods authMethodRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	s := &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		tokens:      tokens,
		authMethods: authMethods,
		tx:          tx,
		jwt:         jwt,
		validate:    validation.New(),
		cfg:         cfg,
		now:         time.Now,
	}
	s.decoyHash = sync.OnceValue(func() []byte {
		h, _ := bcrypt.GenerateFromPassword([]byte("dripdrop-decoy"), cfg.PasswordHashCost)
		return h
	})
	return s
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, accessExp, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     rawRefresh,
		RefreshExpiresAt: refreshToken.ExpiresAt,
		User:             user,
	}, nil
}
