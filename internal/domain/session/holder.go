// internal/domain/session/holder.go
package session

import (
	"fmt"
	"sync"
)

// State is the session holder state
type State string

const (
	// StateResolving is the initial state, before the identity provider has
	// reported whether a session exists. No authorization decision may be
	// made in this state.
	StateResolving State = "resolving"
	// StateAuthenticated means a signed-in identity is present
	StateAuthenticated State = "authenticated"
	// StateAnonymous means the visitor is signed out
	StateAnonymous State = "anonymous"
)

// Identity is the opaque reference to a signed-in user
type Identity struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// Holder tracks the current signed-in identity for one visitor. It starts
// in Resolving and transitions exactly once to Authenticated or Anonymous
// when the provider reports the initial session; afterwards it moves
// between Anonymous and Authenticated on sign-in and sign-out. There is no
// direct Authenticated to Authenticated identity swap.
type Holder struct {
	mu       sync.Mutex
	state    State
	identity *Identity
}

// NewHolder creates a holder in the Resolving state
func NewHolder() *Holder {
	return &Holder{state: StateResolving}
}

// Resolve records the provider's initial session report. A nil identity
// resolves to Anonymous. Calling Resolve after the holder has resolved is
// an error; the initial resolution happens once.
func (h *Holder) Resolve(identity *Identity) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateResolving {
		return fmt.Errorf("session already resolved to %s", h.state)
	}

	if identity == nil {
		h.state = StateAnonymous
		return nil
	}

	h.identity = identity
	h.state = StateAuthenticated
	return nil
}

// SignIn transitions Anonymous to Authenticated with the given identity
func (h *Holder) SignIn(identity Identity) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateResolving:
		return fmt.Errorf("cannot sign in while session is resolving")
	case StateAuthenticated:
		return fmt.Errorf("already signed in")
	}

	h.identity = &identity
	h.state = StateAuthenticated
	return nil
}

// SignOut transitions Authenticated to Anonymous. Signing out while
// Anonymous is a no-op.
func (h *Holder) SignOut() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == StateResolving {
		return fmt.Errorf("cannot sign out while session is resolving")
	}

	h.identity = nil
	h.state = StateAnonymous
	return nil
}

// Snapshot returns the current state and identity
func (h *Holder) Snapshot() (State, *Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state, h.identity
}
