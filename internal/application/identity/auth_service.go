package identity

import (
	"context"
	"errors"

	"github.com/shopeasy/backend/internal/domain/identity"
	"github.com/shopeasy/backend/internal/domain/shared"
	"github.com/shopeasy/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration and authentication
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account and immediately authenticates it.
// Fails with DUPLICATE_EMAIL when the email is already registered.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	user, err := identity.NewUser(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, shared.ErrDuplicateEmail) {
			s.logger.Warn("Registration with existing email", zap.String("email", input.Email))
		}
		return nil, err
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return s.issueToken(user)
}

// Login authenticates a user by email and password.
// Fails with INVALID_CREDENTIALS on an unknown email or a hash mismatch.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login with unknown email", zap.String("email", input.Email))
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.ErrInvalidCredentials
	}

	s.logger.Info("User logged in", zap.Int64("user_id", user.ID))

	return s.issueToken(user)
}

// Logout handles user logout.
// Tokens are stateless, so logout is handled client-side by discarding them.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	s.logger.Info("User logged out", zap.Int64("user_id", userID))
	return nil
}

// CurrentUser returns the profile of the authenticated user
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

func (s *AuthService) issueToken(user *identity.User) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	return &AuthResult{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		User:        ToUserInfo(user),
	}, nil
}
