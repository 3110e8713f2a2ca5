package favorites

import (
	"context"

	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

type Repository interface {
	// Insert persists a new favorite for its owner.
	Insert(ctx context.Context, favorite *models.Favorite) error

	// SelectForUser returns the user's favorites, most recent first.
	SelectForUser(ctx context.Context, userID string) ([]*models.Favorite, error)
}
