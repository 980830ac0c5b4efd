package statements

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, statement *Statement) (*Statement, error) {

	query :=
		`INSERT INTO statements (user_id, operation_type, amount, description)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		statement.UserID, string(statement.OperationType), statement.Amount, statement.Description).
		Scan(&statement.ID, &statement.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return statement, nil
}

// ListByUser returns the user's statements ordered by the seq column, which
// records insertion order regardless of timestamp ties.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Statement, error) {
	query :=
		`SELECT id, user_id, operation_type, amount, description, created_at FROM statements
		 WHERE user_id = $1
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Statement
	for rows.Next() {
		st := &Statement{}
		var opType string
		if err := rows.Scan(&st.ID, &st.UserID, &opType, &st.Amount, &st.Description, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		st.OperationType = OperationType(opType)
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*Statement, error) {
	query :=
		`SELECT id, user_id, operation_type, amount, description, created_at FROM statements
		 WHERE id = $1 AND user_id = $2
		 `

	st := &Statement{}
	var opType string
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&st.ID, &st.UserID, &opType, &st.Amount, &st.Description, &st.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	st.OperationType = OperationType(opType)

	return st, nil
}
