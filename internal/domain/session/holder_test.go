// internal/domain/session/holder_test.go
package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderStartsResolving(t *testing.T) {
	h := NewHolder()
	state, identity := h.Snapshot()

	assert.Equal(t, StateResolving, state)
	assert.Nil(t, identity)
}

func TestResolveToAuthenticated(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(&Identity{UserID: 7, Email: "jo@example.com"}))

	state, identity := h.Snapshot()
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, identity)
	assert.Equal(t, uint(7), identity.UserID)
}

func TestResolveNilIdentityToAnonymous(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(nil))

	state, identity := h.Snapshot()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, identity)
}

func TestResolveHappensOnce(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(nil))

	assert.Error(t, h.Resolve(&Identity{UserID: 1}))

	state, _ := h.Snapshot()
	assert.Equal(t, StateAnonymous, state)
}

func TestSignInFromAnonymous(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(nil))

	require.NoError(t, h.SignIn(Identity{UserID: 3, Email: "sam@example.com"}))

	state, identity := h.Snapshot()
	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, uint(3), identity.UserID)
}

func TestSignInWhileResolvingRejected(t *testing.T) {
	h := NewHolder()
	assert.Error(t, h.SignIn(Identity{UserID: 3}))

	state, _ := h.Snapshot()
	assert.Equal(t, StateResolving, state)
}

func TestNoIdentitySwapWhileAuthenticated(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(&Identity{UserID: 3}))

	assert.Error(t, h.SignIn(Identity{UserID: 9}))

	_, identity := h.Snapshot()
	assert.Equal(t, uint(3), identity.UserID)
}

func TestSignOutFromAuthenticated(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(&Identity{UserID: 3}))

	require.NoError(t, h.SignOut())

	state, identity := h.Snapshot()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, identity)
}

func TestGuardWaitsWhileResolving(t *testing.T) {
	h := NewHolder()

	result := Guard(h, "/wishlist")

	assert.Equal(t, DecisionWait, result.Decision)
	// No navigation side effects while resolving.
	assert.Empty(t, result.RedirectTo)
	assert.Empty(t, result.ReturnTo)
	assert.Empty(t, result.Message)
}

func TestGuardDeniesAnonymousPreservingRequestedLocation(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(nil))

	result := Guard(h, "/checkout")

	assert.Equal(t, DecisionDeny, result.Decision)
	assert.Equal(t, "Please sign in to access this page", result.Message)
	assert.Equal(t, "/", result.RedirectTo)
	assert.Equal(t, "/checkout", result.ReturnTo)
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.Resolve(&Identity{UserID: 3}))

	result := Guard(h, "/profile")

	assert.Equal(t, DecisionAllow, result.Decision)
}
