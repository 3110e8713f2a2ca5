package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
	"github.com/dmitrijs2005/linkkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FavoriteService handles owner-scoped storage of categorized links.
type FavoriteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(db *sql.DB, m repomanager.RepositoryManager) *FavoriteService {
	return &FavoriteService{db: db, repomanager: m}
}

// List returns the user's favorites, most recent first.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]*models.Favorite, error) {
	repo := s.repomanager.Favorites(s.db)
	result, err := repo.SelectForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return result, nil
}

// Create stores a new favorite for userID and returns the persisted record
// with its assigned id and timestamp. Platform and URL are required; title
// and description are optional.
func (s *FavoriteService) Create(ctx context.Context, userID, platform, url, title, description string) (*models.Favorite, error) {
	if platform == "" || url == "" {
		return nil, common.ErrorValidation
	}

	favorite := &models.Favorite{
		ID:          uuid.NewString(),
		UserID:      userID,
		Platform:    platform,
		URL:         url,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}

	repo := s.repomanager.Favorites(s.db)
	if err := repo.Insert(ctx, favorite); err != nil {
		return nil, fmt.Errorf("error creating favorite: %w", err)
	}
	return favorite, nil
}
