package boards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/dbx"
)

// PostgresRepository implements board storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, board *Board) (*Board, error) {
	board.ID = uuid.NewString()
	board.CreatedAt = time.Now().UTC()

	query :=
		`INSERT INTO boards (id, title, description, status, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		board.ID, board.Title, board.Description, string(board.Status), board.OwnerID, board.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return board, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Board, error) {
	query :=
		`SELECT id, title, description, status, owner_id FROM boards
		 WHERE id = $1
		 `

	board := &Board{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&board.ID, &board.Title, &board.Description, &board.Status, &board.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return board, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Board, error) {
	query :=
		`SELECT id, title, description, status, owner_id FROM boards
		 WHERE owner_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Board
	for rows.Next() {
		var board Board
		if err := rows.Scan(&board.ID, &board.Title, &board.Description, &board.Status, &board.OwnerID); err != nil {
			return nil, err
		}
		result = append(result, &board)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus writes the already-validated status. A vanished row yields
// common.ErrorNotFound.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	query :=
		`UPDATE boards SET status = $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM boards
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
