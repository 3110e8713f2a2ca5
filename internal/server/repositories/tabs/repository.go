package tabs

import (
	"context"

	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

type Repository interface {
	// CountForUser returns how many tabs the user currently has.
	CountForUser(ctx context.Context, userID string) (int, error)

	// Insert persists a new tab. A duplicate (user, key) pair yields
	// common.ErrorAlreadyExists.
	Insert(ctx context.Context, tab *models.Tab) error

	// SelectForUser returns the user's tabs in creation order.
	SelectForUser(ctx context.Context, userID string) ([]*models.Tab, error)
}
