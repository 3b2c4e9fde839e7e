package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
	"github.com/kaan-t/go-fin-ledger/internal/repository"
	"github.com/kaan-t/go-fin-ledger/internal/utils"
)

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	repos *repository.Repositories
	cache CacheService // Optional cache service
}

// NewUserService creates a new user service.
func NewUserService(repos *repository.Repositories) *UserServiceImpl {
	return &UserServiceImpl{
		repos: repos,
	}
}

// SetCacheService sets the cache service for this user service.
func (s *UserServiceImpl) SetCacheService(cache CacheService) {
	s.cache = cache
}

// GetProfile returns the authenticated user's profile.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	// Try cache first if available
	if s.cache != nil {
		cachedUser, err := s.cache.GetCachedUser(ctx, userID)
		if err == nil {
			utils.Debug("cache hit for user", "user_id", userID.String())
			return cachedUser, nil
		}
	}

	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	response := user.ToResponse()

	if s.cache != nil {
		if err := s.cache.CacheUser(ctx, user); err != nil {
			// Don't fail the request if caching fails
			utils.Error("failed to cache user", "user_id", userID.String(), "error", err.Error())
		}
	}

	return &response, nil
}
