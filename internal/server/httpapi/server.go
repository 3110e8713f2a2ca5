// Package httpapi exposes the public HTTP/JSON interface: credential
// endpoints issuing the session cookie and the owner-scoped favorites and
// tabs resources.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/linkkeeper/internal/logging"
	"github.com/dmitrijs2005/linkkeeper/internal/server/config"
	"github.com/dmitrijs2005/linkkeeper/internal/server/services"
	"github.com/gorilla/mux"
)

// Server wires the HTTP routes to the application services.
type Server struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	favorites    *services.FavoriteService
	tabs         *services.TabService
	jwtSecret    []byte
	cookieMaxAge int
	cookieSecure bool
}

// NewServer constructs the HTTP server front-end.
func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, fs *services.FavoriteService, ts *services.TabService) *Server {
	return &Server{
		address:      cfg.EndpointAddrHTTP,
		logger:       l.With("module", "httpapi"),
		users:        us,
		favorites:    fs,
		tabs:         ts,
		jwtSecret:    []byte(cfg.SecretKey),
		cookieMaxAge: int(cfg.TokenValidityDuration.Seconds()),
		cookieSecure: cfg.CookieSecure,
	}
}

// Router builds the route table. Exposed for tests driving the server
// through net/http/httptest.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	r.HandleFunc("/favorites", s.requireAuth(s.handleListFavorites)).Methods(http.MethodGet)
	r.HandleFunc("/favorites", s.requireAuth(s.handleCreateFavorite)).Methods(http.MethodPost)

	// GET /user-tabs answers an anonymous caller with an empty array body,
	// still under status 401; clients render it as "no custom tabs".
	r.HandleFunc("/user-tabs", s.requireAuthEmptyList(s.handleListTabs)).Methods(http.MethodGet)
	r.HandleFunc("/user-tabs", s.requireAuth(s.handleCreateTab)).Methods(http.MethodPost)

	r.Use(s.authenticate)

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
