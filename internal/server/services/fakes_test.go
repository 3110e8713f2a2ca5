package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/dmitrijs2005/linkkeeper/internal/dbx"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
	favoritesrepo "github.com/dmitrijs2005/linkkeeper/internal/server/repositories/favorites"
	tabsrepo "github.com/dmitrijs2005/linkkeeper/internal/server/repositories/tabs"
	usersrepo "github.com/dmitrijs2005/linkkeeper/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// memStore is an in-memory stand-in for the PostgreSQL schema. Its tab
// insert enforces the quota and the (user, key) uniqueness under one mutex,
// mirroring the transactional guard the real store gets from the database.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*models.User // by email
	userIDs   map[string]struct{}
	favorites []*models.Favorite
	tabs      map[string][]*models.Tab // by user id
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*models.User),
		userIDs: make(map[string]struct{}),
		tabs:    make(map[string][]*models.Tab),
	}
}

func (s *memStore) addUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Email] = u
	s.userIDs[u.ID] = struct{}{}
}

// memManager vends repositories backed by one memStore. The DBTX argument is
// ignored; atomicity comes from the store's mutex instead.
type memManager struct {
	store *memStore
}

func newMemManager() *memManager {
	return &memManager{store: newMemStore()}
}

func (m *memManager) Users(db dbx.DBTX) usersrepo.Repository         { return &memUsers{m.store} }
func (m *memManager) Favorites(db dbx.DBTX) favoritesrepo.Repository { return &memFavorites{m.store} }
func (m *memManager) Tabs(db dbx.DBTX) tabsrepo.Repository           { return &memTabs{m.store} }
func (m *memManager) RunMigrations(context.Context, *sql.DB) error   { return nil }

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.s.users[user.Email] = user
	r.s.userIDs[user.ID] = struct{}{}
	return user, nil
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *memUsers) Lock(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.userIDs[userID]; !ok {
		return common.ErrorNotFound
	}
	return nil
}

type memFavorites struct{ s *memStore }

func (r *memFavorites) Insert(ctx context.Context, f *models.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.favorites = append(r.s.favorites, f)
	return nil
}

func (r *memFavorites) SelectForUser(ctx context.Context, userID string) ([]*models.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []*models.Favorite
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type memTabs struct{ s *memStore }

func (r *memTabs) CountForUser(ctx context.Context, userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.tabs[userID]), nil
}

func (r *memTabs) Insert(ctx context.Context, tab *models.Tab) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Re-check quota and uniqueness atomically, like the DB constraint plus
	// the locked count guard do in PostgreSQL.
	existing := r.s.tabs[tab.UserID]
	if len(existing) >= MaxTabsPerUser {
		return common.ErrorQuotaExceeded
	}
	for _, t := range existing {
		if t.Key == tab.Key {
			return common.ErrorAlreadyExists
		}
	}
	r.s.tabs[tab.UserID] = append(existing, tab)
	return nil
}

func (r *memTabs) SelectForUser(ctx context.Context, userID string) ([]*models.Tab, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	result := make([]*models.Tab, len(r.s.tabs[userID]))
	copy(result, r.s.tabs[userID])
	return result, nil
}
