// Package service defines interfaces for business logic services.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	// Register creates a new user account. Returns
	// domain.ErrUserAlreadyExists when the email is taken.
	Register(ctx context.Context, req *domain.CreateUserRequest) (*domain.UserResponse, error)

	// Login authenticates a user and returns tokens. Returns
	// domain.ErrAuthenticationFailed for a wrong email or password.
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	// RefreshToken generates a new access token from a refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
}

// UserService defines the interface for user profile operations.
type UserService interface {
	// GetProfile returns the authenticated user's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error)
}

// StatementService defines the interface for recording and fetching
// ledger entries.
type StatementService interface {
	// Record validates and appends one statement for the user. Withdrawals
	// are checked against the balance derived from the full history at
	// call time; deposits always succeed. Exactly one record is appended
	// on success and nothing else is mutated.
	Record(ctx context.Context, userID uuid.UUID, op domain.OperationType, req *domain.CreateStatementRequest) (*domain.StatementResponse, error)

	// Get retrieves a single statement scoped to the requesting user.
	Get(ctx context.Context, userID, statementID uuid.UUID) (*domain.StatementResponse, error)
}

// BalanceService defines the interface for the derived-balance read path.
type BalanceService interface {
	// Get folds the user's full statement history into a balance and
	// returns it together with the ordered history.
	Get(ctx context.Context, userID uuid.UUID) (*domain.BalanceResponse, error)
}

// CacheService defines the interface for caching operations. Only immutable
// or invalidation-safe data is cached: user profiles and single statements.
// Balances are never cached; they are folded fresh on every read.
type CacheService interface {
	// User cache operations
	CacheUser(ctx context.Context, user *domain.User) error
	GetCachedUser(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error)
	InvalidateUserCache(ctx context.Context, userID uuid.UUID) error

	// Statement cache operations. Statements are append-only so cached
	// entries never go stale.
	CacheStatement(ctx context.Context, stmt *domain.Statement) error
	GetCachedStatement(ctx context.Context, userID, statementID uuid.UUID) (*domain.StatementResponse, error)

	// Rate limiting
	CheckRateLimit(ctx context.Context, clientIP string, maxRequests int, window time.Duration) (bool, error)

	// Health
	Health(ctx context.Context) error
}

// MetricsRecorder is the subset of the metrics collector the services need.
type MetricsRecorder interface {
	IncrementStatementsRecorded(op string)
}

// Services aggregates all service interfaces.
type Services struct {
	Auth      AuthService
	User      UserService
	Statement StatementService
	Balance   BalanceService
	Cache     CacheService
}

// LoginResponse represents the response from login operation.
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	ExpiresIn    int                  `json:"expires_in"`
}

// TokenResponse represents the response from token refresh operation.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}
