package handlers

import (
	"net/http"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/services"
)

// SessionResolver maps the session cookie to the visitor's ViewState,
// starting a new session when the cookie is missing or expired
type SessionResolver struct {
	views *services.ViewService
	cfg   config.SessionConfig
}

// NewSessionResolver creates a new SessionResolver
func NewSessionResolver(vs *services.ViewService, cfg config.SessionConfig) *SessionResolver {
	return &SessionResolver{views: vs, cfg: cfg}
}

// resolve returns the visitor's ViewState and re-issues the cookie so its
// lifetime slides along with the server-side idle timeout
func (s *SessionResolver) resolve(w http.ResponseWriter, r *http.Request) *services.ViewState {
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		if state, ok := s.views.Lookup(c.Value); ok {
			s.setCookie(w, r, c.Value)
			return state
		}
	}

	id, state := s.views.NewSession()
	s.setCookie(w, r, id)
	return state
}

func (s *SessionResolver) setCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
