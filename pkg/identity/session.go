package identity

import (
	"sync"

	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
)

// Signer is the sign-in surface of the identity service.
type Signer interface {
	SignInAnonymously() (*Identity, error)
	SignInWithCustomToken(token string) (*Identity, error)
}

// Session resolves an identity once at startup and publishes identity
// change events to registered listeners. Until the first event fires the
// identity is unresolved and dependents must suspend remote operations.
type Session struct {
	signer       Signer
	initialToken string

	mu           sync.RWMutex
	identity     *Identity
	resolved     bool
	listeners    map[int]func(userId string)
	nextListener int
}

func NewSession(signer Signer, initialToken string) *Session {
	return &Session{
		signer:       signer,
		initialToken: initialToken,
		listeners:    make(map[int]func(userId string)),
	}
}

// Start signs in with the pre-issued token when one was injected by the
// hosting environment, anonymously otherwise. A failure on either path is
// terminal; the session stays unresolved and the caller renders an error
// state.
func (s *Session) Start() error {
	var id *Identity
	var err error

	if s.initialToken != "" {
		id, err = s.signer.SignInWithCustomToken(s.initialToken)
	} else {
		id, err = s.signer.SignInAnonymously()
	}
	if err != nil {
		logger.Error(err, "Identity bootstrap failed.")
		return err
	}

	s.publish(id)
	return nil
}

// SignOut clears the identity and notifies listeners with an empty user id.
func (s *Session) SignOut() {
	s.publish(nil)
}

func (s *Session) publish(id *Identity) {
	s.mu.Lock()
	s.identity = id
	s.resolved = id != nil
	callbacks := make([]func(string), 0, len(s.listeners))
	for _, cb := range s.listeners {
		callbacks = append(callbacks, cb)
	}
	s.mu.Unlock()

	userId := ""
	if id != nil {
		userId = id.UserId
	}
	for _, cb := range callbacks {
		cb(userId)
	}
}

// OnIdentityChange registers a listener for identity events and returns an
// unsubscribe function. If the identity is already resolved the listener is
// invoked immediately with the current user id.
func (s *Session) OnIdentityChange(cb func(userId string)) func() {
	s.mu.Lock()
	key := s.nextListener
	s.nextListener++
	s.listeners[key] = cb
	resolved := s.resolved
	userId := ""
	if s.identity != nil {
		userId = s.identity.UserId
	}
	s.mu.Unlock()

	if resolved {
		cb(userId)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, key)
	}
}

// UserID returns the current opaque user id, or "" while unresolved.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return ""
	}
	return s.identity.UserId
}

func (s *Session) Resolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}
