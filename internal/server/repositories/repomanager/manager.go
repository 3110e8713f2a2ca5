package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/linkkeeper/internal/dbx"
	"github.com/dmitrijs2005/linkkeeper/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/linkkeeper/internal/server/repositories/tabs"
	"github.com/dmitrijs2005/linkkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can use
// the same repository code against a plain connection or inside a
// transaction started with dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Favorites(db dbx.DBTX) favorites.Repository
	Tabs(db dbx.DBTX) tabs.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
