package models

// RemainingTime is the floor decomposition of the time left until a target.
// All fields are non-negative.
type RemainingTime struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every unit is zero, which is how a reached target
// is represented.
func (r RemainingTime) IsZero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

// Finished reports whether r is present and fully elapsed.
func Finished(r *RemainingTime) bool {
	return r != nil && r.IsZero()
}

// DisplayMode is derived from the target and the latest RemainingTime.
type DisplayMode int

const (
	ModeNone DisplayMode = iota // nothing to render: unparseable or not yet computed
	ModeAwaitingInput
	ModeCounting
	ModeFinished
)

func (m DisplayMode) String() string {
	switch m {
	case ModeAwaitingInput:
		return "awaiting-input"
	case ModeCounting:
		return "counting"
	case ModeFinished:
		return "finished"
	default:
		return "none"
	}
}
