package bridge

// Phase is a Component lifecycle phase.
type Phase int

const (
	PhaseUnmounted Phase = iota
	PhaseLayoutPending
	PhaseReady
	PhaseDetached
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "unmounted"
	case PhaseLayoutPending:
		return "layout-pending"
	case PhaseReady:
		return "ready"
	case PhaseDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// Lifecycle tracks the phase of one Component. Transitions only move
// forward; an invalid transition reports false and leaves the phase as is.
type Lifecycle struct {
	phase Phase
}

func (l *Lifecycle) Phase() Phase { return l.phase }

// Mount moves Unmounted to LayoutPending.
func (l *Lifecycle) Mount() bool {
	if l.phase != PhaseUnmounted {
		return false
	}
	l.phase = PhaseLayoutPending
	return true
}

// Ready moves LayoutPending to Ready.
func (l *Lifecycle) Ready() bool {
	if l.phase != PhaseLayoutPending {
		return false
	}
	l.phase = PhaseReady
	return true
}

// Unmount moves any mounted phase to Detached. Detached is terminal.
func (l *Lifecycle) Unmount() bool {
	switch l.phase {
	case PhaseLayoutPending, PhaseReady:
		l.phase = PhaseDetached
		return true
	}
	return false
}

// Active reports whether the component is mounted and not yet detached.
func (l *Lifecycle) Active() bool {
	return l.phase == PhaseLayoutPending || l.phase == PhaseReady
}
