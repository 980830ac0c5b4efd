// Package statements implements the ledger operations: creating deposit and
// withdrawal entries, computing the running balance, and the ownership-scoped
// statement lookup.
package statements

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, usersRepo users.Repository) *Service {
	return &Service{repo: repo, users: usersRepo}
}

func (s *Service) checkUser(ctx context.Context, userID string) error {
	_, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error resolving user: %w", err)
	}
	return nil
}

// balanceOf sums the user's statements in insertion order. The total is
// recomputed on every call; there is no cached running total.
func (s *Service) balanceOf(ctx context.Context, userID string) (decimal.Decimal, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error listing statements: %w", err)
	}

	balance := decimal.Zero
	for _, st := range list {
		if st.OperationType == OperationDeposit {
			balance = balance.Add(st.Amount)
		} else {
			balance = balance.Sub(st.Amount)
		}
	}
	return balance, nil
}

// CreateStatement validates and appends a single ledger entry. The
// funds-sufficiency check and the append are two separate store operations
// with no serialization between them; concurrent withdrawals from the same
// user can race past the check.
func (s *Service) CreateStatement(ctx context.Context, userID string, opType OperationType, amount decimal.Decimal, description string) (*Statement, error) {

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	if !opType.Valid() {
		return nil, common.ErrorInvalidInput
	}
	if !amount.IsPositive() {
		return nil, common.ErrorInvalidInput
	}

	if opType == OperationWithdraw {
		balance, err := s.balanceOf(ctx, userID)
		if err != nil {
			return nil, err
		}
		if amount.GreaterThan(balance) {
			return nil, common.ErrorInsufficientFunds
		}
	}

	statement := &Statement{
		UserID:        userID,
		OperationType: opType,
		Amount:        amount,
		Description:   description,
	}

	statement, err := s.repo.Create(ctx, statement)
	if err != nil {
		return nil, fmt.Errorf("error creating statement: %w", err)
	}

	return statement, nil
}

// GetBalance returns the user's statements in chronological order together
// with the balance derived from them.
func (s *Service) GetBalance(ctx context.Context, userID string) (*Balance, error) {

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing statements: %w", err)
	}

	balance := decimal.Zero
	for _, st := range list {
		if st.OperationType == OperationDeposit {
			balance = balance.Add(st.Amount)
		} else {
			balance = balance.Sub(st.Amount)
		}
	}

	return &Balance{Statements: list, Balance: balance}, nil
}

// GetStatementOperation returns a single statement owned by the user.
// A statement belonging to a different user yields the same NotFound as a
// missing one, so cross-user existence does not leak.
func (s *Service) GetStatementOperation(ctx context.Context, userID, statementID string) (*Statement, error) {

	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID, statementID)
}
