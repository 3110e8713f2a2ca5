// Package tabs provides the PostgreSQL-backed repository for user-defined
// category tabs. The schema carries a UNIQUE (user_id, key) constraint;
// Insert surfaces it as common.ErrorAlreadyExists via the conflict clause.
package tabs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/dmitrijs2005/linkkeeper/internal/dbx"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

// PostgresRepository implements tab storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountForUser(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM tabs
		WHERE user_id = $1
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, tab *models.Tab) error {
	query := `
		INSERT INTO tabs (id, user_id, key, label, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, key) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query,
		tab.ID, tab.UserID, tab.Key, tab.Label, tab.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *PostgresRepository) SelectForUser(ctx context.Context, userID string) ([]*models.Tab, error) {
	query := `
		SELECT id, user_id, key, label, created_at FROM tabs
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tabs: %w", err)
	}
	defer rows.Close()

	var result []*models.Tab
	for rows.Next() {
		var item models.Tab
		if err := rows.Scan(&item.ID, &item.UserID, &item.Key, &item.Label, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
