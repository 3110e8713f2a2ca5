package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/linkkeeper/internal/common"
	"github.com/dmitrijs2005/linkkeeper/internal/server/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createFavoriteRequest struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createTabRequest struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, token, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			errorJSON(w, http.StatusBadRequest, "User exists")
		case errors.Is(err, common.ErrorValidation):
			errorJSON(w, http.StatusBadRequest, "Email and password required")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			errorJSON(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", req.Email)
	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			errorJSON(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Internal error")
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	favorites, err := s.favorites.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "listing favorites failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if favorites == nil {
		favorites = []*models.Favorite{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (s *Server) handleCreateFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req createFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	favorite, err := s.favorites.Create(r.Context(), userID, req.Platform, req.URL, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			errorJSON(w, http.StatusBadRequest, "Platform and URL required")
			return
		}
		s.logger.Error(r.Context(), "creating favorite failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJSON(w, http.StatusOK, favorite)
}

func (s *Server) handleListTabs(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	tabs, err := s.tabs.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "listing tabs failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if tabs == nil {
		tabs = []*models.Tab{}
	}
	writeJSON(w, http.StatusOK, tabs)
}

func (s *Server) handleCreateTab(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req createTabRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tab, err := s.tabs.Create(r.Context(), userID, req.Key, req.Label)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			errorJSON(w, http.StatusBadRequest, "Key and label required")
		case errors.Is(err, common.ErrorQuotaExceeded):
			errorJSON(w, http.StatusBadRequest, "Maximum 5 custom tabs allowed")
		case errors.Is(err, common.ErrorAlreadyExists):
			errorJSON(w, http.StatusBadRequest, "Tab already exists")
		case errors.Is(err, common.ErrorNotFound):
			// Valid token for an account that no longer exists.
			errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		default:
			s.logger.Error(r.Context(), "creating tab failed", "error", err)
			errorJSON(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, tab)
}
