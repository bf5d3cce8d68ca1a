// Package session manages the bearer-token cookie: the credential the
// console holds between page loads. The cookie is issued on login with
// the expiry the remote service returned and cleared by expiring it in
// the past.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"shopadmin/internal/catalog"
)

// Manager reads, issues and verifies the token cookie.
type Manager struct {
	cookieName string
	client     *catalog.Client
	logger     *slog.Logger
}

// NewManager creates a Manager using the given cookie name.
func NewManager(cookieName string, client *catalog.Client, logger *slog.Logger) *Manager {
	return &Manager{cookieName: cookieName, client: client, logger: logger}
}

// Token returns the stored credential, or "" when none is present.
func (m *Manager) Token(r *http.Request) string {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Login exchanges credentials for a token and persists it. The caller
// decides how a failure is shown; the session stays unauthenticated.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, username, password string) error {
	token, expired, err := m.client.Signin(ctx, username, password)
	if err != nil {
		return err
	}
	m.issue(w, token, expired)
	return nil
}

// Check validates a previously stored credential against the remote
// service. A missing or rejected token is not an error to surface: it
// is the normal expired-session path, so it only logs and reports
// unauthenticated. On rejection the stale cookie is cleared.
func (m *Manager) Check(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	token := m.Token(r)
	if token == "" {
		return "", false
	}
	if err := m.client.Check(ctx, token); err != nil {
		m.logger.Info("stored session no longer valid", "error", err)
		m.Logout(w)
		return "", false
	}
	return token, true
}

// Logout expires the token cookie immediately.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) issue(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
