package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/dmitrijs2005/linkkeeper/internal/dbx"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
	"github.com/dmitrijs2005/linkkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MaxTabsPerUser is the hard cap on custom tabs a single user may create.
const MaxTabsPerUser = 5

// TabService handles owner-scoped storage of custom category tabs, including
// the per-user quota and key uniqueness guarantees.
type TabService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTabService constructs a TabService.
func NewTabService(db *sql.DB, m repomanager.RepositoryManager) *TabService {
	return &TabService{db: db, repomanager: m}
}

// List returns the user's tabs in creation order.
func (s *TabService) List(ctx context.Context, userID string) ([]*models.Tab, error) {
	repo := s.repomanager.Tabs(s.db)
	result, err := repo.SelectForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tabs: %w", err)
	}
	return result, nil
}

// Create stores a new tab for userID. The quota check and the insert run in
// one transaction that first locks the owning user row, so two concurrent
// requests for the same user are serialized: the count can never overshoot
// MaxTabsPerUser and at most one of two same-key requests succeeds. Returns
// common.ErrorValidation for empty key/label, common.ErrorQuotaExceeded at
// the cap, and common.ErrorAlreadyExists for a duplicate key.
func (s *TabService) Create(ctx context.Context, userID, key, label string) (*models.Tab, error) {
	if key == "" || label == "" {
		return nil, common.ErrorValidation
	}

	tab := &models.Tab{
		ID:        uuid.NewString(),
		UserID:    userID,
		Key:       key,
		Label:     label,
		CreatedAt: time.Now(),
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Lock(ctx, userID); err != nil {
			return err
		}

		repo := s.repomanager.Tabs(tx)
		n, err := repo.CountForUser(ctx, userID)
		if err != nil {
			return err
		}
		if n >= MaxTabsPerUser {
			return common.ErrorQuotaExceeded
		}

		return repo.Insert(ctx, tab)
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorQuotaExceeded),
			errors.Is(err, common.ErrorAlreadyExists),
			errors.Is(err, common.ErrorNotFound):
			return nil, err
		default:
			return nil, fmt.Errorf("error creating tab: %w", err)
		}
	}
	return tab, nil
}
