package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kaan-t/go-fin-ledger/internal/domain"
)

func TestMemoryUsersRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		repo := NewMemoryUsersRepo()
		user := &domain.User{
			Name:         "Lucas Feliciano",
			Email:        "lucas@example.com",
			PasswordHash: "hash",
		}

		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if user.ID == uuid.Nil {
			t.Error("Create should assign an ID")
		}
		if user.CreatedAt.IsZero() {
			t.Error("Create should stamp CreatedAt")
		}

		got, err := repo.GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Email != user.Email {
			t.Errorf("Email = %q, want %q", got.Email, user.Email)
		}
	})

	t.Run("get by email", func(t *testing.T) {
		repo := NewMemoryUsersRepo()
		user := &domain.User{Name: "Lucas", Email: "lucas@example.com", PasswordHash: "hash"}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByEmail(ctx, "lucas@example.com")
		if err != nil {
			t.Fatalf("GetByEmail failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("ID = %v, want %v", got.ID, user.ID)
		}

		// Lookup is case-sensitive, stored form only.
		if _, err := repo.GetByEmail(ctx, "LUCAS@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound for different casing, got %v", err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := NewMemoryUsersRepo()
		first := &domain.User{Name: "First", Email: "dup@example.com", PasswordHash: "hash"}
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		second := &domain.User{Name: "Second", Email: "dup@example.com", PasswordHash: "hash"}
		if err := repo.Create(ctx, second); !errors.Is(err, domain.ErrUserAlreadyExists) {
			t.Errorf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := NewMemoryUsersRepo()
		if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("stored copy is isolated from caller", func(t *testing.T) {
		repo := NewMemoryUsersRepo()
		user := &domain.User{Name: "Lucas", Email: "iso@example.com", PasswordHash: "hash"}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		user.Name = "Mutated"
		got, err := repo.GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Name != "Lucas" {
			t.Errorf("stored user mutated through caller pointer: %q", got.Name)
		}
	})
}

func TestMemoryStatementsRepo(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	deposit := func(amount string) *domain.Statement {
		return &domain.Statement{
			UserID: userID,
			Type:   domain.OperationDeposit,
			Amount: decimal.RequireFromString(amount),
		}
	}
	withdraw := func(amount string) *domain.Statement {
		return &domain.Statement{
			UserID: userID,
			Type:   domain.OperationWithdraw,
			Amount: decimal.RequireFromString(amount),
		}
	}

	t.Run("create and list in order", func(t *testing.T) {
		repo := NewMemoryStatementsRepo()

		first := deposit("100.00")
		second := deposit("25.50")
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		list, err := repo.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("ListByUser failed: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 statements, got %d", len(list))
		}
		if list[0].ID != first.ID || list[1].ID != second.ID {
			t.Error("statements should come back in creation order")
		}
	})

	t.Run("withdrawal within balance succeeds", func(t *testing.T) {
		repo := NewMemoryStatementsRepo()
		if err := repo.Create(ctx, deposit("100.00")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := repo.CreateWithdrawal(ctx, withdraw("100.00")); err != nil {
			t.Fatalf("withdrawal of the full balance should succeed: %v", err)
		}

		list, _ := repo.ListByUser(ctx, userID)
		if got := domain.BalanceOf(list); !got.Equal(decimal.Zero) {
			t.Errorf("balance = %s, want 0", got)
		}
	})

	t.Run("overdraft rejected and not recorded", func(t *testing.T) {
		repo := NewMemoryStatementsRepo()
		if err := repo.Create(ctx, deposit("50.00")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		err := repo.CreateWithdrawal(ctx, withdraw("50.01"))
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		list, _ := repo.ListByUser(ctx, userID)
		if len(list) != 1 {
			t.Errorf("rejected withdrawal must not be recorded, got %d statements", len(list))
		}
	})

	t.Run("withdrawal from empty history rejected", func(t *testing.T) {
		repo := NewMemoryStatementsRepo()
		if err := repo.CreateWithdrawal(ctx, withdraw("0.01")); !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Errorf("expected ErrInsufficientFunds, got %v", err)
		}
	})

	t.Run("get by id scoped to owner", func(t *testing.T) {
		repo := NewMemoryStatementsRepo()
		stmt := deposit("10.00")
		if err := repo.Create(ctx, stmt); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, userID, stmt.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.ID != stmt.ID {
			t.Errorf("ID = %v, want %v", got.ID, stmt.ID)
		}

		// Another user must not see it.
		if _, err := repo.GetByID(ctx, uuid.New(), stmt.ID); !errors.Is(err, domain.ErrStatementNotFound) {
			t.Errorf("expected ErrStatementNotFound for foreign owner, got %v", err)
		}

		// Unknown statement id.
		if _, err := repo.GetByID(ctx, userID, uuid.New()); !errors.Is(err, domain.ErrStatementNotFound) {
			t.Errorf("expected ErrStatementNotFound for unknown id, got %v", err)
		}
	})

	t.Run("list filters by user", func(t *testing.T) {
		repo := NewMemoryStatementsRepo()
		otherID := uuid.New()

		if err := repo.Create(ctx, deposit("10.00")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		other := &domain.Statement{UserID: otherID, Type: domain.OperationDeposit, Amount: decimal.NewFromInt(5)}
		if err := repo.Create(ctx, other); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		list, err := repo.ListByUser(ctx, userID)
		if err != nil {
			t.Fatalf("ListByUser failed: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 statement, got %d", len(list))
		}
		if list[0].UserID != userID {
			t.Error("list leaked another user's statement")
		}
	})
}
