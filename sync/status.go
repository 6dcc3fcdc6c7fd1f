// ABOUTME: Engine cycle states and user-visible sync status
// ABOUTME: Status events drive the indicator; states describe the cycle phase
package sync

// State is the reconciliation engine's cycle phase. A cycle walks
// Idle → Authenticating → Pulling → Pushing → Idle; any failure returns
// directly to Idle without resuming mid-step.
type State int32

const (
	StateIdle State = iota
	StateAuthenticating
	StatePulling
	StatePushing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthenticating:
		return "authenticating"
	case StatePulling:
		return "pulling"
	case StatePushing:
		return "pushing"
	}
	return "unknown"
}

// Status is the user-visible indicator. Sync is best-effort: a failed cycle
// surfaces as Offline, never as a blocking error.
type Status int

const (
	StatusOffline Status = iota
	StatusSyncing
	StatusSynced
)

func (s Status) String() string {
	switch s {
	case StatusOffline:
		return "Offline"
	case StatusSyncing:
		return "Syncing"
	case StatusSynced:
		return "Synced"
	}
	return "unknown"
}
