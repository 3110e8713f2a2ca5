package users

import (
	"context"

	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by exact email match.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Lock acquires a row-level lock on the user until the surrounding
	// transaction ends. It serializes per-user mutations (the tab quota
	// check-and-insert) and doubles as an existence check.
	Lock(ctx context.Context, userID string) error
}
