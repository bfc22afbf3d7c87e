package session

import (
	"net/http"
	"time"
)

// Store abstracts where the bearer token issued by the upstream API lives
// between requests. The guard and the web handlers receive a Store at
// construction so tests can swap in a fake.
type Store interface {
	SetToken(w http.ResponseWriter, token string, ttlDays int)
	Token(r *http.Request) (string, bool)
	ClearToken(w http.ResponseWriter)
	HasValidSession(r *http.Request) bool
}

// CookieStore persists the token in a browser cookie. The cookie's own expiry
// is the only TTL mechanism: no claims inspection, no server round-trip. A
// revoked-but-unexpired token stays "valid" here until a gated request fails.
type CookieStore struct {
	name   string
	secure bool
}

func NewCookieStore(name string, secure bool) *CookieStore {
	if name == "" {
		name = "authToken"
	}
	return &CookieStore{name: name, secure: secure}
}

func (s *CookieStore) SetToken(w http.ResponseWriter, token string, ttlDays int) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour),
		MaxAge:   ttlDays * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *CookieStore) Token(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStore) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *CookieStore) HasValidSession(r *http.Request) bool {
	_, ok := s.Token(r)
	return ok
}
