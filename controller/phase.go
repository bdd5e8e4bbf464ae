package controller

// Phase represents the controller's transition state
// It replaces an ad-hoc "is animating" flag with an explicit state: NextSlide
// is a no-op unless the controller is idle
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseTransitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}

// Direction indicates which way the most recent transition moved
type Direction uint8

const (
	DirectionNext Direction = iota
	DirectionPrev
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrev:
		return "prev"
	default:
		return "unknown"
	}
}
