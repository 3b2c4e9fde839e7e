package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
	"github.com/kaan-t/go-fin-ledger/internal/repository"
)

// BalanceServiceImpl implements the BalanceService interface.
type BalanceServiceImpl struct {
	repos *repository.Repositories
}

// NewBalanceService creates a new balance service.
func NewBalanceService(repos *repository.Repositories) *BalanceServiceImpl {
	return &BalanceServiceImpl{
		repos: repos,
	}
}

// Get folds the user's full statement history into a balance. The balance is
// derived on every call and never read from a stored counter, so it cannot
// drift from the ledger.
func (s *BalanceServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*domain.BalanceResponse, error) {
	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	statements, err := s.repos.Statements.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	balance := domain.BalanceOf(statements)

	responses := make([]domain.StatementResponse, len(statements))
	for i, stmt := range statements {
		responses[i] = stmt.ToResponse()
	}

	return &domain.BalanceResponse{
		Balance:    balance.StringFixed(2),
		Statements: responses,
	}, nil
}
