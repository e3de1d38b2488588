// internal/domain/session/guard.go
package session

// Decision is the route guard's verdict for a guarded view
type Decision string

const (
	// DecisionWait means the session is still resolving; render a wait
	// indicator and make no navigation decision either way.
	DecisionWait Decision = "wait"
	// DecisionDeny means access is refused and the visitor is redirected
	DecisionDeny Decision = "deny"
	// DecisionAllow means the guarded view may render
	DecisionAllow Decision = "allow"
)

// EntryPath is where denied visitors are redirected
const EntryPath = "/"

// DeniedMessage is the transient message shown on denial
const DeniedMessage = "Please sign in to access this page"

// GuardResult carries the decision plus the redirect target and the
// originally requested location, preserved for a post-login return.
type GuardResult struct {
	Decision   Decision `json:"decision"`
	Message    string   `json:"message,omitempty"`
	RedirectTo string   `json:"redirect_to,omitempty"`
	ReturnTo   string   `json:"return_to,omitempty"`
}

// Guard decides whether a guarded view may render for the holder's current
// state. While the session is resolving no decision is made; anonymous
// visitors are denied with a message and redirected to the entry page with
// the requested location preserved.
func Guard(h *Holder, requested string) GuardResult {
	state, _ := h.Snapshot()

	switch state {
	case StateResolving:
		return GuardResult{Decision: DecisionWait}
	case StateAnonymous:
		return GuardResult{
			Decision:   DecisionDeny,
			Message:    DeniedMessage,
			RedirectTo: EntryPath,
			ReturnTo:   requested,
		}
	default:
		return GuardResult{Decision: DecisionAllow}
	}
}
