// Package service provides business logic for ledger operations.
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

// StatementServiceImpl implements the StatementService interface.
type StatementServiceImpl struct {
	repos   *repository.Repositories
	cache   CacheService    // Optional cache service
	metrics MetricsRecorder // Optional metrics collector
}

// NewStatementService creates a new statement service.
func NewStatementService(repos *repository.Repositories) *StatementServiceImpl {
	return &StatementServiceImpl{
		repos: repos,
	}
}

// SetCacheService sets the cache service for this statement service.
func (s *StatementServiceImpl) SetCacheService(cache CacheService) {
	s.cache = cache
}

// SetMetricsCollector sets the metrics collector for recorded statements.
func (s *StatementServiceImpl) SetMetricsCollector(metrics MetricsRecorder) {
	s.metrics = metrics
}

// Record validates and appends one statement for the user.
func (s *StatementServiceImpl) Record(ctx context.Context, userID uuid.UUID, op domain.OperationType, req *domain.CreateStatementRequest) (*domain.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	stmt := &domain.Statement{
		UserID:      userID,
		Type:        op,
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := stmt.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	switch op {
	case domain.OperationDeposit:
		if err := s.repos.Statements.Create(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to record deposit: %w", err)
		}
	case domain.OperationWithdraw:
		// The repository folds the balance and appends in one atomic
		// step, so the sufficient-funds check always sees the full
		// history as of this call.
		err := s.repos.Statements.CreateWithdrawal(ctx, stmt)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return nil, domain.ErrInsufficientFunds
			}
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to record withdrawal: %w", err)
		}
	default:
		return nil, fmt.Errorf("invalid operation type: %s", op)
	}

	utils.Info("statement recorded",
		"statement_id", stmt.ID.String(),
		"user_id", userID.String(),
		"type", string(op),
		"amount", stmt.Amount.StringFixed(2),
	)

	// Statements are immutable once appended, so caching never goes stale.
	if s.cache != nil {
		if err := s.cache.CacheStatement(ctx, stmt); err != nil {
			utils.Error("failed to cache statement", "statement_id", stmt.ID.String(), "error", err.Error())
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementStatementsRecorded(string(op))
	}

	response := stmt.ToResponse()
	return &response, nil
}

// Get retrieves a single statement scoped to the requesting user. A
// statement owned by someone else is reported as not found rather than
// leaked.
func (s *StatementServiceImpl) Get(ctx context.Context, userID, statementID uuid.UUID) (*domain.StatementResponse, error) {
	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if s.cache != nil {
		cached, err := s.cache.GetCachedStatement(ctx, userID, statementID)
		if err == nil {
			utils.Debug("cache hit for statement", "statement_id", statementID.String())
			return cached, nil
		}
	}

	stmt, err := s.repos.Statements.GetByID(ctx, userID, statementID)
	if err != nil {
		if errors.Is(err, domain.ErrStatementNotFound) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheStatement(ctx, stmt); err != nil {
			utils.Error("failed to cache statement", "statement_id", stmt.ID.String(), "error", err.Error())
		}
	}

	response := stmt.ToResponse()
	return &response, nil
}
