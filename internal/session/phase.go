package session

// Phase is a session's lifecycle stage.  Transitions move strictly
// forward: Connecting → IdentityCapture → GameplayLoop → Terminated.
type Phase int32

const (
	PhaseConnecting Phase = iota
	PhaseIdentityCapture
	PhaseGameplayLoop
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseConnecting:
		return "connecting"
	case PhaseIdentityCapture:
		return "identity-capture"
	case PhaseGameplayLoop:
		return "gameplay"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
