package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/linkkeeper/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authenticate resolves the session cookie into a user identity and stores
// it in the request context. A missing or invalid token is not an error
// here: the request proceeds anonymously and the per-route guards decide.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err == nil && cookie.Value != "" {
			userID, err := auth.GetUserIDFromToken(cookie.Value, s.jwtSecret)
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// requireAuth rejects anonymous requests with 401 before the handler runs.
func (s *Server) requireAuth(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userIDFromContext(r.Context()); !ok {
			errorJSON(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h(w, r)
	}
}

// requireAuthEmptyList is the guard variant for GET /user-tabs: anonymous
// callers get status 401 with an empty JSON array instead of an error body.
func (s *Server) requireAuthEmptyList(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userIDFromContext(r.Context()); !ok {
			writeJSON(w, http.StatusUnauthorized, []struct{}{})
			return
		}
		h(w, r)
	}
}
