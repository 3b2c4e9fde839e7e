package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan-t/go-fin-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// statementsRepo implements the StatementsRepo interface on Postgres.
type statementsRepo struct {
	db *pgxpool.Pool
}

// NewStatementsRepo creates a new statements repository.
func NewStatementsRepo(db *pgxpool.Pool) StatementsRepo {
	return &statementsRepo{db: db}
}

const insertStatement = `
	INSERT INTO statements (id, user_id, type, amount, description, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

// foldBalance derives the balance from the full statement history. There is
// no stored balance column anywhere; this query is the only source of truth.
const foldBalance = `
	SELECT COALESCE(SUM(CASE WHEN type = 'deposit' THEN amount ELSE -amount END), 0)
	FROM statements
	WHERE user_id = $1`

// Create appends a statement unconditionally.
func (r *statementsRepo) Create(ctx context.Context, stmt *domain.Statement) error {
	stampNew(stmt)

	_, err := r.db.Exec(ctx, insertStatement,
		stmt.ID, stmt.UserID, string(stmt.Type), stmt.Amount, stmt.Description, stmt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}

	return nil
}

// CreateWithdrawal appends a withdrawal after verifying funds. The user row
// is locked for the duration of the transaction so concurrent withdrawals
// for the same user serialize instead of racing the balance check.
func (r *statementsRepo) CreateWithdrawal(ctx context.Context, stmt *domain.Statement) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lockQuery := `SELECT id FROM users WHERE id = $1 FOR UPDATE`
	var lockedID uuid.UUID
	if err := tx.QueryRow(ctx, lockQuery, stmt.UserID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to lock user row: %w", err)
	}

	var balance decimal.Decimal
	if err := tx.QueryRow(ctx, foldBalance, stmt.UserID).Scan(&balance); err != nil {
		return fmt.Errorf("failed to compute balance: %w", err)
	}

	if stmt.Amount.GreaterThan(balance) {
		return domain.ErrInsufficientFunds
	}

	stampNew(stmt)

	_, err = tx.Exec(ctx, insertStatement,
		stmt.ID, stmt.UserID, string(stmt.Type), stmt.Amount, stmt.Description, stmt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit withdrawal: %w", err)
	}

	return nil
}

// GetByID retrieves a statement by ID scoped to its owner.
func (r *statementsRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Statement, error) {
	query := `
		SELECT id, user_id, type, amount, description, created_at
		FROM statements
		WHERE id = $1 AND user_id = $2`

	var stmt domain.Statement
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&stmt.ID,
		&stmt.UserID,
		&stmt.Type,
		&stmt.Amount,
		&stmt.Description,
		&stmt.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	return &stmt, nil
}

// ListByUser retrieves all statements for a user in creation order. The log
// is append-only and never reordered, so insertion order is creation order.
func (r *statementsRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Statement, error) {
	query := `
		SELECT id, user_id, type, amount, description, created_at
		FROM statements
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	defer rows.Close()

	var statements []*domain.Statement
	for rows.Next() {
		var stmt domain.Statement
		err := rows.Scan(
			&stmt.ID,
			&stmt.UserID,
			&stmt.Type,
			&stmt.Amount,
			&stmt.Description,
			&stmt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		statements = append(statements, &stmt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate statements: %w", err)
	}

	return statements, nil
}

// stampNew assigns a fresh id and timestamp to a statement being appended.
func stampNew(stmt *domain.Statement) {
	if stmt.ID == uuid.Nil {
		stmt.ID = uuid.New()
	}
	stmt.CreatedAt = time.Now()
}
