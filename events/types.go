package events

// Type identifies a carousel event category
type Type uint8

const (
	// TypeSlideChanged fires after the active slide index changes
	TypeSlideChanged Type = iota
	// TypeBoundaryReached fires when a non-looping advance hits the last slide
	TypeBoundaryReached
	// TypeLoopCompleted fires when the loop timer wraps a full cycle
	TypeLoopCompleted
	// TypeVisibilityChanged fires when the visibility gate flips
	TypeVisibilityChanged

	typeCount
)

// String returns the event type name for logs and status displays
func (t Type) String() string {
	switch t {
	case TypeSlideChanged:
		return "SlideChanged"
	case TypeBoundaryReached:
		return "BoundaryReached"
	case TypeLoopCompleted:
		return "LoopCompleted"
	case TypeVisibilityChanged:
		return "VisibilityChanged"
	default:
		return "Unknown"
	}
}

// Event is a single carousel occurrence routed to adapter handlers
// Slide and Previous are meaningful for slide/boundary events, Forward for
// slide changes, Visible for visibility changes
type Event struct {
	Type     Type
	Slide    int
	Previous int
	Forward  bool
	Auto     bool
	Visible  bool
}
