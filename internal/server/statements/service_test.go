package statements

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

// --- helpers ---

func newLedger(t *testing.T) (*Service, *users.InMemoryRepository) {
	t.Helper()
	usersRepo := users.NewInMemoryRepository()
	return NewService(NewInMemoryRepository(), usersRepo), usersRepo
}

func createUser(t *testing.T, repo *users.InMemoryRepository) *users.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &users.User{
		Name:         "Luiz",
		Email:        "test@gmail.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("user create error: %v", err)
	}
	return u
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- CreateStatement ---

func TestCreateStatement_Deposit(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)

	st, err := svc.CreateStatement(context.Background(), u.ID, OperationDeposit, dec("2000.00"), "salary")
	if err != nil {
		t.Fatalf("CreateStatement error: %v", err)
	}
	if st.ID == "" {
		t.Fatalf("expected generated id")
	}
	if st.CreatedAt.IsZero() {
		t.Fatalf("expected generated timestamp")
	}
	if !st.Amount.Equal(dec("2000.00")) || st.Description != "salary" {
		t.Fatalf("unexpected statement: %+v", st)
	}
}

func TestCreateStatement_UnknownUser(t *testing.T) {
	svc, _ := newLedger(t)

	_, err := svc.CreateStatement(context.Background(), "missing", OperationDeposit, dec("10"), "x")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestCreateStatement_InvalidInput(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)
	ctx := context.Background()

	if _, err := svc.CreateStatement(ctx, u.ID, OperationType("transfer"), dec("10"), "x"); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("expected ErrorInvalidInput for bad type, got %v", err)
	}
	if _, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec("0"), "x"); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("expected ErrorInvalidInput for zero amount, got %v", err)
	}
	if _, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec("-5"), "x"); !errors.Is(err, common.ErrorInvalidInput) {
		t.Fatalf("expected ErrorInvalidInput for negative amount, got %v", err)
	}
}

func TestCreateStatement_InsufficientFunds(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)
	ctx := context.Background()

	if _, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec("100"), "seed"); err != nil {
		t.Fatalf("deposit error: %v", err)
	}

	_, err := svc.CreateStatement(ctx, u.ID, OperationWithdraw, dec("100.01"), "too much")
	if !errors.Is(err, common.ErrorInsufficientFunds) {
		t.Fatalf("expected ErrorInsufficientFunds, got %v", err)
	}

	// the failed withdrawal must not append a statement
	b, err := svc.GetBalance(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if len(b.Statements) != 1 {
		t.Fatalf("expected 1 statement after failed withdrawal, got %d", len(b.Statements))
	}
	if !b.Balance.Equal(dec("100")) {
		t.Fatalf("expected balance 100, got %s", b.Balance)
	}
}

func TestCreateStatement_WithdrawExactBalance(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)
	ctx := context.Background()

	if _, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec("50"), "seed"); err != nil {
		t.Fatalf("deposit error: %v", err)
	}
	if _, err := svc.CreateStatement(ctx, u.ID, OperationWithdraw, dec("50"), "all of it"); err != nil {
		t.Fatalf("withdrawing the exact balance must succeed: %v", err)
	}

	b, err := svc.GetBalance(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if !b.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", b.Balance)
	}
}

// --- GetBalance ---

func TestGetBalance_SumsInInsertionOrder(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)
	ctx := context.Background()

	deposits := []string{"10.10", "20.20", "30.30"}
	withdrawals := []string{"5.05", "15.15"}

	for _, a := range deposits {
		if _, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec(a), "d"); err != nil {
			t.Fatalf("deposit %s error: %v", a, err)
		}
	}
	for _, a := range withdrawals {
		if _, err := svc.CreateStatement(ctx, u.ID, OperationWithdraw, dec(a), "w"); err != nil {
			t.Fatalf("withdraw %s error: %v", a, err)
		}
	}

	b, err := svc.GetBalance(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}

	if !b.Balance.Equal(dec("40.40")) {
		t.Fatalf("expected balance 40.40, got %s", b.Balance)
	}
	if len(b.Statements) != len(deposits)+len(withdrawals) {
		t.Fatalf("expected %d statements, got %d", len(deposits)+len(withdrawals), len(b.Statements))
	}

	// chronological order: deposits first, then withdrawals, as inserted
	want := append(append([]string{}, deposits...), withdrawals...)
	for i, st := range b.Statements {
		if !st.Amount.Equal(dec(want[i])) {
			t.Fatalf("statement %d out of order: got %s want %s", i, st.Amount, want[i])
		}
	}
}

func TestGetBalance_EmptyHistory(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)

	b, err := svc.GetBalance(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if !b.Balance.IsZero() || len(b.Statements) != 0 {
		t.Fatalf("expected empty zero balance, got %+v", b)
	}
}

func TestGetBalance_UnknownUser(t *testing.T) {
	svc, _ := newLedger(t)

	_, err := svc.GetBalance(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

// --- GetStatementOperation ---

func TestGetStatementOperation_Success(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)
	ctx := context.Background()

	st, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec("2000.00"), "salary")
	if err != nil {
		t.Fatalf("CreateStatement error: %v", err)
	}

	got, err := svc.GetStatementOperation(ctx, u.ID, st.ID)
	if err != nil {
		t.Fatalf("GetStatementOperation error: %v", err)
	}
	if got.ID != st.ID || !got.Amount.Equal(dec("2000.00")) {
		t.Fatalf("unexpected statement: %+v", got)
	}
}

func TestGetStatementOperation_CrossUserYieldsNotFound(t *testing.T) {
	svc, usersRepo := newLedger(t)
	owner := createUser(t, usersRepo)
	ctx := context.Background()

	other, err := usersRepo.Create(ctx, &users.User{Name: "Other", Email: "other@gmail.com"})
	if err != nil {
		t.Fatalf("user create error: %v", err)
	}

	st, err := svc.CreateStatement(ctx, owner.ID, OperationDeposit, dec("100"), "salary")
	if err != nil {
		t.Fatalf("CreateStatement error: %v", err)
	}

	_, err = svc.GetStatementOperation(ctx, other.ID, st.ID)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("cross-user lookup must yield ErrorNotFound, got %v", err)
	}
}

func TestGetStatementOperation_MissingStatement(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)

	_, err := svc.GetStatementOperation(context.Background(), u.ID, "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetStatementOperation_UnknownUser(t *testing.T) {
	svc, _ := newLedger(t)

	_, err := svc.GetStatementOperation(context.Background(), "missing", "whatever")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

// --- spec scenario ---

func TestLedger_DepositWithdrawScenario(t *testing.T) {
	svc, usersRepo := newLedger(t)
	u := createUser(t, usersRepo)
	ctx := context.Background()

	if _, err := svc.CreateStatement(ctx, u.ID, OperationDeposit, dec("2000.00"), "salary"); err != nil {
		t.Fatalf("deposit error: %v", err)
	}

	b, err := svc.GetBalance(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if !b.Balance.Equal(dec("2000.00")) || len(b.Statements) != 1 {
		t.Fatalf("expected balance 2000.00 with one statement, got %s / %d", b.Balance, len(b.Statements))
	}

	if _, err := svc.CreateStatement(ctx, u.ID, OperationWithdraw, dec("2500.00"), "rent"); !errors.Is(err, common.ErrorInsufficientFunds) {
		t.Fatalf("expected ErrorInsufficientFunds, got %v", err)
	}

	if _, err := svc.CreateStatement(ctx, u.ID, OperationWithdraw, dec("500.00"), "rent"); err != nil {
		t.Fatalf("withdraw error: %v", err)
	}

	b, err = svc.GetBalance(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if !b.Balance.Equal(dec("1500.00")) {
		t.Fatalf("expected balance 1500.00, got %s", b.Balance)
	}
}
