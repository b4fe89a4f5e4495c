// Package session owns the process-wide storefront session: the current user
// and the current basket id. Both are single-writer values behind one lock,
// so a change is immediately visible to every consumer and there are no
// stale reads from ambient globals.
package session

import (
	"net/url"
	"sync"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
)

// Session holds the signed-in user and the active basket id. At most one
// basket is active at a time. The zero state is anonymous with no basket.
type Session struct {
	mu       sync.RWMutex
	loginURL string
	user     *domain.User
	basketID string
}

// New returns an anonymous session. loginURL is the external login UI the
// sign-in flow redirects to.
func New(loginURL string) *Session {
	return &Session{loginURL: loginURL}
}

// User returns the current user, if a session is active.
func (s *Session) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// SetUser marks the session authenticated as u.
func (s *Session) SetUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// ClearUser returns the session to the anonymous state. Called after a
// successful sign-out; the basket id is kept, as baskets are not tied to the
// identity session.
func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// BasketID returns the active basket id, if one is set.
func (s *Session) BasketID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.basketID, s.basketID != ""
}

// SetBasketID records id as the active basket.
func (s *Session) SetBasketID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basketID = id
}

// ClearBasketID forgets the active basket. Called after checkout or explicit
// removal of the whole basket.
func (s *Session) ClearBasketID() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basketID = ""
}

// SignInURL builds the external login UI URL carrying returnURL as the
// redirect_uri, so the login UI sends the user back to the page they were on.
func (s *Session) SignInURL(returnURL string) string {
	return s.loginURL + "?redirect_uri=" + url.QueryEscape(returnURL)
}
