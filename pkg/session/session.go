// Package session holds the current login. The API client and the auth
// service share one *Session by reference; nothing reads token state from
// package globals.
package session

import (
	"sync"

	"github.com/serdvr66/orderQPro/entity"
)

type Session struct {
	mu    sync.RWMutex
	user  entity.User
	token string
}

func New() *Session { return &Session{} }

// Begin installs a fresh login, replacing whatever was active.
func (s *Session) Begin(user entity.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
}

// End clears the login. Outgoing requests go unauthenticated afterwards.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = entity.User{}
	s.token = ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
