// Package favorites provides the PostgreSQL-backed repository for stored
// links. Every query is scoped by the owner's user id.
package favorites

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/linkkeeper/internal/dbx"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

// PostgresRepository implements favorite storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, favorite *models.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, platform, url, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		favorite.ID, favorite.UserID, favorite.Platform, favorite.URL,
		favorite.Title, favorite.Description, favorite.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SelectForUser(ctx context.Context, userID string) ([]*models.Favorite, error) {
	query := `
		SELECT id, user_id, platform, url, title, description, created_at FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}
	defer rows.Close()

	var result []*models.Favorite
	for rows.Next() {
		var item models.Favorite
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Platform, &item.URL,
			&item.Title, &item.Description, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
