package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

// In-memory implementations of the repositories. They back the service tests
// and let the server run without a database. Withdrawal atomicity is provided
// by a mutex instead of a row lock, which gives the same per-user
// serialization guarantee.

// MemoryUsersRepo is an in-memory UsersRepo.
type MemoryUsersRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

// NewMemoryUsersRepo creates an empty in-memory users repository.
func NewMemoryUsersRepo() *MemoryUsersRepo {
	return &MemoryUsersRepo{users: make(map[uuid.UUID]*domain.User)}
}

// Create creates a new user.
func (r *MemoryUsersRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}

	now := time.Now()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// GetByID retrieves a user by ID.
func (r *MemoryUsersRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetByEmail retrieves a user by email with a case-sensitive exact match.
func (r *MemoryUsersRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

// MemoryStatementsRepo is an in-memory StatementsRepo. Statements are kept
// in a single append-only slice, so insertion order is creation order.
type MemoryStatementsRepo struct {
	mu         sync.Mutex
	statements []*domain.Statement
}

// NewMemoryStatementsRepo creates an empty in-memory statements repository.
func NewMemoryStatementsRepo() *MemoryStatementsRepo {
	return &MemoryStatementsRepo{}
}

// Create appends a statement unconditionally.
func (r *MemoryStatementsRepo) Create(_ context.Context, stmt *domain.Statement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.append(stmt)
	return nil
}

// CreateWithdrawal appends a withdrawal only if the folded balance covers
// the amount. The check and the append happen under one lock.
func (r *MemoryStatementsRepo) CreateWithdrawal(_ context.Context, stmt *domain.Statement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance := domain.BalanceOf(r.listLocked(stmt.UserID))
	if stmt.Amount.GreaterThan(balance) {
		return domain.ErrInsufficientFunds
	}

	r.append(stmt)
	return nil
}

// GetByID retrieves a statement by ID scoped to its owner.
func (r *MemoryStatementsRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*domain.Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stmt := range r.statements {
		if stmt.ID == id && stmt.UserID == userID {
			copied := *stmt
			return &copied, nil
		}
	}

	return nil, domain.ErrStatementNotFound
}

// ListByUser retrieves all statements for a user in creation order.
func (r *MemoryStatementsRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.listLocked(userID)
	copies := make([]*domain.Statement, len(list))
	for i, stmt := range list {
		copied := *stmt
		copies[i] = &copied
	}
	return copies, nil
}

// append stamps and stores a statement. Caller must hold the lock.
func (r *MemoryStatementsRepo) append(stmt *domain.Statement) {
	if stmt.ID == uuid.Nil {
		stmt.ID = uuid.New()
	}
	stmt.CreatedAt = time.Now()

	stored := *stmt
	r.statements = append(r.statements, &stored)
}

// listLocked filters the log by user. Caller must hold the lock.
func (r *MemoryStatementsRepo) listLocked(userID uuid.UUID) []*domain.Statement {
	var list []*domain.Statement
	for _, stmt := range r.statements {
		if stmt.UserID == userID {
			list = append(list, stmt)
		}
	}
	return list
}
