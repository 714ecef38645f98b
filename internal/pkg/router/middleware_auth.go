package router

import (
	"errors"
	"net/http"

	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
)

// DefaultCookieName is used when session.cookie_name is not configured.
const DefaultCookieName = "gotix_session"

func cookieName(cfg config.Config) string {
	if cfg != nil {
		if name := cfg.GetString("session.cookie_name"); name != "" {
			return name
		}
	}
	return DefaultCookieName
}

type sessionConfig struct {
	store      session.Store
	cookieName string

	// public routes skip session resolution entirely.
	public map[string]map[string]struct{}
	// sessionOnly routes need a session but not a completed OTP check.
	sessionOnly map[string]map[string]struct{}
}

// middlewareSession resolves the session cookie and gates authenticated
// endpoints. Everything that is not public requires a live session, and
// everything that is not listed as session-only additionally requires the
// OTP check to have been completed.
func middlewareSession(cfg sessionConfig) Middleware {
	inSet := func(sets map[string]map[string]struct{}, method, path string) bool {
		if s, ok := sets[method]; ok {
			_, ok = s[path]
			return ok
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if inSet(cfg.public, r.Method, path) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(cfg.cookieName)
			if err != nil || cookie.Value == "" {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			sess, err := cfg.store.Get(r.Context(), cookie.Value)
			if errors.Is(err, goerror.ErrNotFound) {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}
			if err != nil {
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}

			if !sess.OTPVerified && !inSet(cfg.sessionOnly, r.Method, path) {
				writeJSON(w, errorResponse{Message: "OTP verification required"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.SetCurrent(r.Context(), sess)))
		})
	}
}
