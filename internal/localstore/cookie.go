package localstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/logger"
)

// CookieStore reads cookies from one request and writes Set-Cookie headers to
// its response. Writes are visible to later reads on the same store.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	pending map[string]*string
}

// NewCookieStore binds a store to a single request/response pair
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w, pending: make(map[string]*string)}
}

// Context returns the bound request's context
func (s *CookieStore) Context() context.Context {
	return s.r.Context()
}

// Get returns the unescaped cookie value
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	v, err := url.PathUnescape(c.Value)
	if err != nil {
		logger.FromContext(s.r.Context()).Debug(LogMsgCookieDecodeFailed, "key", key, "error", err)
		return "", false
	}
	return v, true
}

// Set writes a session cookie. Values whose cookie would exceed MaxCookieSize
// are rejected with domain.ErrLocalStoreFull and no header is written.
func (s *CookieStore) Set(key, value string) error {
	c := &http.Cookie{
		Name:     key,
		Value:    url.PathEscape(value),
		Path:     CookiePath,
		SameSite: http.SameSiteLaxMode,
	}
	if size := len(c.String()); size > MaxCookieSize {
		logger.FromContext(s.r.Context()).Warn(LogMsgCookieTooLarge, "key", key, "size", size)
		return fmt.Errorf("%w: cookie %s is %d bytes", domain.ErrLocalStoreFull, key, size)
	}
	http.SetCookie(s.w, c)
	s.pending[key] = &value
	return nil
}

// Remove expires the cookie
func (s *CookieStore) Remove(key string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:   key,
		Value:  "",
		Path:   CookiePath,
		MaxAge: -1,
	})
	s.pending[key] = nil
}
