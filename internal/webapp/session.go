package webapp

import (
	"sync"

	"deskview/internal/bookingform"
)

// sessionStore hands out one form controller per caller, so stale
// option refreshes are detected per browser session rather than
// globally.
type sessionStore struct {
	mu          sync.Mutex
	controllers map[string]*bookingform.Controller
	newFunc     func() *bookingform.Controller
}

func newSessionStore(newFunc func() *bookingform.Controller) *sessionStore {
	return &sessionStore{
		controllers: make(map[string]*bookingform.Controller),
		newFunc:     newFunc,
	}
}

func (s *sessionStore) get(key string) *bookingform.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.controllers[key]; ok {
		return c
	}
	c := s.newFunc()
	s.controllers[key] = c
	return c
}
