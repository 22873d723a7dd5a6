package handlers

import (
	"context"
	"net/http"
	"time"

	"ukmprhub/internal/config"
	"ukmprhub/internal/models"
)

type contextKey string

const memberKey contextKey = "member"

// WithMember attaches the authenticated member to ctx.
func WithMember(ctx context.Context, member *models.Member) context.Context {
	return context.WithValue(ctx, memberKey, member)
}

// CurrentMember returns the member attached by the session middleware.
func CurrentMember(ctx context.Context) (*models.Member, bool) {
	member, ok := ctx.Value(memberKey).(*models.Member)
	return member, ok && member != nil
}

// SessionCookie returns the raw session cookie value, or "".
func SessionCookie(r *http.Request, cfg config.Session) string {
	cookie, err := r.Cookie(cfg.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func SetSessionCookie(w http.ResponseWriter, cfg config.Session, token string) {
	http.SetCookie(w, sessionCookie(cfg, token, int(cfg.TTL/time.Second)))
}

// ClearSessionCookie expires the cookie in the browser.
func ClearSessionCookie(w http.ResponseWriter, cfg config.Session) {
	http.SetCookie(w, sessionCookie(cfg, "", -1))
}

func sessionCookie(cfg config.Session, value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if cfg.CookieSecure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: sameSite,
	}
}
