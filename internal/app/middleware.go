package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/config"
	"github.com/spendwell/spendwell/pkg/session"
	"github.com/spendwell/spendwell/pkg/user"
)

// openEndpoints can be reached without a session.
var openEndpoints = map[string]bool{
	"/api/register": true,
	"/api/login":    true,
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve the session cookie into the current user for API requests
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !strings.HasPrefix(req.URL.Path, "/api/") || openEndpoints[req.URL.Path] {
				next.ServeHTTP(w, req)
				return
			}

			ctx := req.Context()

			cookie, err := req.Cookie(session.CookieName)
			if err != nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			s, err := deps.SessionService.Resolve(ctx, cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
					log.Debugf("rejected session token: %v", err)
					http.Error(w, "authentication required", http.StatusUnauthorized)
					return
				}
				log.Errorf("failed to resolve session: %v", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			u, err := deps.UserService.GetUser(ctx, s.UserId)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					log.Debugf("session user no longer exists: %d", s.UserId)
					http.Error(w, "authentication required", http.StatusUnauthorized)
					return
				}
				log.Errorf("failed to get user: %v", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			ctx = user.WithUser(ctx, u)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
