package statements

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
)

func TestInMemory_ListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &Statement{
			UserID:        "u-1",
			OperationType: OperationDeposit,
			Amount:        decimal.New(int64(i+1), 0),
			Description:   fmt.Sprintf("op-%d", i),
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	list, err := repo.ListByUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(list))
	}
	for i, st := range list {
		if st.Description != fmt.Sprintf("op-%d", i) {
			t.Fatalf("statement %d out of order: %+v", i, st)
		}
	}
}

func TestInMemory_GetByID_Ownership(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	st, err := repo.Create(ctx, &Statement{
		UserID:        "owner",
		OperationType: OperationDeposit,
		Amount:        decimal.New(100, 0),
		Description:   "salary",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := repo.GetByID(ctx, "owner", st.ID); err != nil {
		t.Fatalf("owner lookup error: %v", err)
	}

	if _, err := repo.GetByID(ctx, "intruder", st.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("cross-user lookup must yield ErrorNotFound, got %v", err)
	}

	if _, err := repo.GetByID(ctx, "owner", "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing id must yield ErrorNotFound, got %v", err)
	}
}

func TestInMemory_ListIsolatedPerUser(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Statement{UserID: "a", OperationType: OperationDeposit, Amount: decimal.New(1, 0)}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, err := repo.ListByUser(ctx, "b")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no statements for user b, got %d", len(list))
	}
}
