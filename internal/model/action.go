package model

// ActionKind names one of the optional player controls. The declaration
// order is the expanded view's left-to-right render order.
type ActionKind int

const (
	ActionRepeatTrack ActionKind = iota
	ActionPreviousTrack
	ActionPlayPause
	ActionNextTrack
	ActionAutoPlay
)

// String returns the string representation of ActionKind.
func (k ActionKind) String() string {
	switch k {
	case ActionRepeatTrack:
		return "RepeatTrack"
	case ActionPreviousTrack:
		return "PreviousTrack"
	case ActionPlayPause:
		return "PlayPause"
	case ActionNextTrack:
		return "NextTrack"
	case ActionAutoPlay:
		return "AutoPlay"
	default:
		return "Unknown"
	}
}

// AllActionKinds returns every action kind in render order. Rendering walks
// this list and skips kinds whose slot is absent.
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionRepeatTrack,
		ActionPreviousTrack,
		ActionPlayPause,
		ActionNextTrack,
		ActionAutoPlay,
	}
}

// CollapsedActionKinds returns the subset of kinds shown inline in the
// collapsed view, in render order.
func CollapsedActionKinds() []ActionKind {
	return []ActionKind{
		ActionPreviousTrack,
		ActionPlayPause,
		ActionNextTrack,
	}
}

// ActionSlot is the payload of a present action control. A kind with no slot
// in the configuration is omitted from the layout entirely, not disabled.
type ActionSlot struct {
	// Toggled drives the active tint for stateful controls (play/pause,
	// repeat, autoplay). It is ignored for next/previous.
	Toggled bool

	// Handler is invoked with no arguments on tap. The widget never changes
	// its own state in response; the host re-supplies a fresh configuration.
	Handler func()
}
