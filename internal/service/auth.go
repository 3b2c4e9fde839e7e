package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaan-t/go-fin-ledger/internal/auth"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
	"github.com/kaan-t/go-fin-ledger/internal/repository"
	"github.com/kaan-t/go-fin-ledger/internal/utils"
)

// authService implements the AuthService interface.
type authService struct {
	repos      *repository.Repositories
	jwtManager *auth.JWTManager
}

// NewAuthService creates a new authentication service.
func NewAuthService(repos *repository.Repositories, jwtManager *auth.JWTManager) AuthService {
	return &authService{
		repos:      repos,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account.
func (s *authService) Register(ctx context.Context, req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Uniqueness is an exact, case-sensitive match on the stored email.
	_, err := s.repos.Users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	// The repository repeats the uniqueness check under its own constraint,
	// closing the window between the lookup above and the insert.
	if err := s.repos.Users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.Info("user registered",
		"user_id", user.ID.String(),
		"email", user.Email,
	)

	response := user.ToResponse()
	return &response, nil
}

// Login authenticates a user and returns tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.ComparePassword(user.PasswordHash, password) {
		return nil, domain.ErrAuthenticationFailed
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	utils.Info("user logged in", "user_id", user.ID.String())

	userResponse := user.ToResponse()
	return &LoginResponse{
		User:         &userResponse,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    int(tokenPair.ExpiresIn),
	}, nil
}

// RefreshToken generates a new access token from a refresh token.
func (s *authService) RefreshToken(_ context.Context, refreshToken string) (*TokenResponse, error) {
	newAccessToken, err := s.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &TokenResponse{
		AccessToken: newAccessToken,
		ExpiresIn:   int(auth.AccessTokenDuration.Seconds()),
	}, nil
}
