// Package repository defines interfaces for data access.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

// UsersRepo defines the interface for user data operations.
type UsersRepo interface {
	// Create creates a new user. Returns domain.ErrUserAlreadyExists when
	// the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. Returns domain.ErrUserNotFound when
	// no such user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email with a case-sensitive exact
	// match. Returns domain.ErrUserNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// StatementsRepo defines the interface for the append-only statement log.
type StatementsRepo interface {
	// Create appends a statement unconditionally. Used for deposits.
	Create(ctx context.Context, stmt *domain.Statement) error

	// CreateWithdrawal appends a withdrawal statement only if the user's
	// folded balance covers the amount. The balance check and the insert
	// are a single atomic step so that two concurrent withdrawals cannot
	// both pass the check against a stale balance. Returns
	// domain.ErrInsufficientFunds when the amount exceeds the balance.
	CreateWithdrawal(ctx context.Context, stmt *domain.Statement) error

	// GetByID retrieves a statement by ID scoped to its owner. Returns
	// domain.ErrStatementNotFound when the statement does not exist or
	// belongs to a different user.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Statement, error)

	// ListByUser retrieves all statements for a user in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Statement, error)
}

// Repositories aggregates all repository interfaces.
type Repositories struct {
	Users      UsersRepo
	Statements StatementsRepo
}
