package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType is the kind of ledger entry. The set is closed; code that
// switches on it must handle every constant.
type OperationType string

const (
	// OperationDeposit adds funds to the account.
	OperationDeposit OperationType = "deposit"
	// OperationWithdraw removes funds and is balance-constrained.
	OperationWithdraw OperationType = "withdraw"
)

// Valid reports whether the operation type is one of the known kinds.
func (op OperationType) Valid() bool {
	switch op {
	case OperationDeposit, OperationWithdraw:
		return true
	}
	return false
}

// Statement represents a single ledger entry. Statements are append-only:
// once created they are never mutated or deleted.
type Statement struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Type        OperationType   `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// CreateStatementRequest represents the body of a deposit or withdraw call.
// The operation type comes from the route, not the body.
type CreateStatementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// StatementResponse represents a statement in API responses. Amount is a
// fixed two-decimal string.
type StatementResponse struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Type        OperationType `json:"type"`
	Amount      string        `json:"amount"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ToResponse converts a Statement to StatementResponse.
func (s *Statement) ToResponse() StatementResponse {
	return StatementResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Type:        s.Type,
		Amount:      s.Amount.StringFixed(2),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// BalanceResponse represents the derived balance plus the full statement
// history it was folded from.
type BalanceResponse struct {
	Balance    string              `json:"balance"`
	Statements []StatementResponse `json:"statements"`
}

// Signed returns the statement's contribution to the balance: positive for
// deposits, negative for withdrawals.
func (s *Statement) Signed() decimal.Decimal {
	switch s.Type {
	case OperationDeposit:
		return s.Amount
	case OperationWithdraw:
		return s.Amount.Neg()
	}
	return decimal.Zero
}

// BalanceOf folds a statement sequence into its net balance. The balance is
// never stored anywhere; every caller derives it from the full history.
func BalanceOf(statements []*Statement) decimal.Decimal {
	balance := decimal.Zero
	for _, s := range statements {
		balance = balance.Add(s.Signed())
	}
	return balance
}

// Validate validates the statement data.
func (s *Statement) Validate() error {
	if s.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}

	if !s.Type.Valid() {
		return fmt.Errorf("type: invalid operation, must be 'deposit' or 'withdraw'")
	}

	if err := validateAmount(s.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	return nil
}

// Validate validates the create statement request.
func (r *CreateStatementRequest) Validate() error {
	if err := validateAmount(r.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	if len(r.Description) > 255 {
		return fmt.Errorf("description: must be at most 255 characters")
	}

	return nil
}

// validateAmount validates a statement amount.
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be greater than 0")
	}

	// Two-place precision; finer granularity than cents is rejected.
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("amount must have at most two decimal places")
	}

	if amount.GreaterThan(decimal.NewFromInt(1000000)) {
		return fmt.Errorf("amount cannot exceed 1,000,000")
	}

	return nil
}
