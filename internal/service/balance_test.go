package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

func TestBalanceServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("new user starts at zero", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewBalanceService(repos)
		user := createTestUser(t, repos, "zero@example.com")

		resp, err := svc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if resp.Balance != "0.00" {
			t.Errorf("Balance = %q, want %q", resp.Balance, "0.00")
		}
		if len(resp.Statements) != 0 {
			t.Errorf("expected empty history, got %d statements", len(resp.Statements))
		}
	})

	t.Run("balance tracks the statement history", func(t *testing.T) {
		repos := newTestRepos()
		stmtSvc := NewStatementService(repos)
		svc := NewBalanceService(repos)
		user := createTestUser(t, repos, "history@example.com")

		if _, err := stmtSvc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "100.00")}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}

		resp, err := svc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if resp.Balance != "100.00" {
			t.Errorf("after deposit: Balance = %q, want %q", resp.Balance, "100.00")
		}
		if len(resp.Statements) != 1 {
			t.Fatalf("after deposit: expected 1 statement, got %d", len(resp.Statements))
		}

		if _, err := stmtSvc.Record(ctx, user.ID, domain.OperationWithdraw, &domain.CreateStatementRequest{Amount: amountOf(t, "50.00")}); err != nil {
			t.Fatalf("withdrawal failed: %v", err)
		}

		resp, err = svc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if resp.Balance != "50.00" {
			t.Errorf("after withdrawal: Balance = %q, want %q", resp.Balance, "50.00")
		}
		if len(resp.Statements) != 2 {
			t.Fatalf("after withdrawal: expected 2 statements, got %d", len(resp.Statements))
		}

		// Oldest first.
		if resp.Statements[0].Type != domain.OperationDeposit || resp.Statements[1].Type != domain.OperationWithdraw {
			t.Error("statements should come back in creation order")
		}
	})

	t.Run("reading the balance changes nothing", func(t *testing.T) {
		repos := newTestRepos()
		stmtSvc := NewStatementService(repos)
		svc := NewBalanceService(repos)
		user := createTestUser(t, repos, "idempotent@example.com")

		if _, err := stmtSvc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "42.42")}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}

		first, err := svc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		second, err := svc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		if first.Balance != second.Balance {
			t.Errorf("repeated reads disagree: %q vs %q", first.Balance, second.Balance)
		}
		if len(first.Statements) != len(second.Statements) {
			t.Errorf("repeated reads disagree on history length: %d vs %d", len(first.Statements), len(second.Statements))
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewBalanceService(repos)

		_, err := svc.Get(ctx, uuid.New())
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
