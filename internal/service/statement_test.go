package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kaan-t/go-fin-ledger/internal/domain"
	"github.com/kaan-t/go-fin-ledger/internal/repository"
)

func newTestRepos() *repository.Repositories {
	return &repository.Repositories{
		Users:      repository.NewMemoryUsersRepo(),
		Statements: repository.NewMemoryStatementsRepo(),
	}
}

func createTestUser(t *testing.T, repos *repository.Repositories, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed-password",
	}
	if err := repos.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func amountOf(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	amt, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount %q: %v", s, err)
	}
	return amt
}

func TestStatementServiceRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit succeeds", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		user := createTestUser(t, repos, "deposit@example.com")

		resp, err := svc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{
			Amount:      amountOf(t, "100.00"),
			Description: "Deposit",
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		if resp.ID == uuid.Nil {
			t.Error("response should carry a generated ID")
		}
		if resp.Type != domain.OperationDeposit {
			t.Errorf("Type = %v, want deposit", resp.Type)
		}
		if resp.Amount != "100.00" {
			t.Errorf("Amount = %q, want %q", resp.Amount, "100.00")
		}
	})

	t.Run("withdrawal within balance succeeds", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		user := createTestUser(t, repos, "withdraw@example.com")

		if _, err := svc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "100.00")}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}

		resp, err := svc.Record(ctx, user.ID, domain.OperationWithdraw, &domain.CreateStatementRequest{Amount: amountOf(t, "50.00")})
		if err != nil {
			t.Fatalf("withdrawal failed: %v", err)
		}
		if resp.Type != domain.OperationWithdraw {
			t.Errorf("Type = %v, want withdraw", resp.Type)
		}
	})

	t.Run("overdraft rejected without side effects", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		balanceSvc := NewBalanceService(repos)
		user := createTestUser(t, repos, "overdraft@example.com")

		if _, err := svc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "100.00")}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}
		if _, err := svc.Record(ctx, user.ID, domain.OperationWithdraw, &domain.CreateStatementRequest{Amount: amountOf(t, "50.00")}); err != nil {
			t.Fatalf("withdrawal failed: %v", err)
		}

		// Balance is now 50; withdrawing 100 must fail.
		_, err := svc.Record(ctx, user.ID, domain.OperationWithdraw, &domain.CreateStatementRequest{Amount: amountOf(t, "100.00")})
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		resp, err := balanceSvc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("balance failed: %v", err)
		}
		if resp.Balance != "50.00" {
			t.Errorf("balance after rejected withdrawal = %q, want %q", resp.Balance, "50.00")
		}
		if len(resp.Statements) != 2 {
			t.Errorf("rejected withdrawal must not be recorded, got %d statements", len(resp.Statements))
		}
	})

	t.Run("withdrawal of the exact balance succeeds", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		user := createTestUser(t, repos, "exact@example.com")

		if _, err := svc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "75.25")}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}
		if _, err := svc.Record(ctx, user.ID, domain.OperationWithdraw, &domain.CreateStatementRequest{Amount: amountOf(t, "75.25")}); err != nil {
			t.Fatalf("exact-balance withdrawal should succeed: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)

		_, err := svc.Record(ctx, uuid.New(), domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "10.00")})
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("invalid amount rejected before any write", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		balanceSvc := NewBalanceService(repos)
		user := createTestUser(t, repos, "invalid@example.com")

		for _, amount := range []string{"0", "-10", "10.005"} {
			if _, err := svc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, amount)}); err == nil {
				t.Errorf("amount %q should be rejected", amount)
			}
		}

		resp, err := balanceSvc.Get(ctx, user.ID)
		if err != nil {
			t.Fatalf("balance failed: %v", err)
		}
		if len(resp.Statements) != 0 {
			t.Errorf("rejected requests must not append, got %d statements", len(resp.Statements))
		}
	})
}

func TestStatementServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns own statement", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		user := createTestUser(t, repos, "get@example.com")

		created, err := svc.Record(ctx, user.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "10.00"), Description: "Deposit"})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		got, err := svc.Get(ctx, user.ID, created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("ID = %v, want %v", got.ID, created.ID)
		}
		if got.Description != "Deposit" {
			t.Errorf("Description = %q, want %q", got.Description, "Deposit")
		}
	})

	t.Run("unknown statement id", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		user := createTestUser(t, repos, "unknown-stmt@example.com")

		_, err := svc.Get(ctx, user.ID, uuid.New())
		if !errors.Is(err, domain.ErrStatementNotFound) {
			t.Errorf("expected ErrStatementNotFound, got %v", err)
		}
	})

	t.Run("other user's statement reported as not found", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)
		owner := createTestUser(t, repos, "owner@example.com")
		intruder := createTestUser(t, repos, "intruder@example.com")

		created, err := svc.Record(ctx, owner.ID, domain.OperationDeposit, &domain.CreateStatementRequest{Amount: amountOf(t, "10.00")})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		_, err = svc.Get(ctx, intruder.ID, created.ID)
		if !errors.Is(err, domain.ErrStatementNotFound) {
			t.Errorf("expected ErrStatementNotFound for foreign owner, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewStatementService(repos)

		_, err := svc.Get(ctx, uuid.New(), uuid.New())
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
