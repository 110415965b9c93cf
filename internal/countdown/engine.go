// Package countdown computes the time remaining until a target moment and
// drives a once-per-second refresh of that computation.
package countdown

import (
	"strings"
	"time"

	"github.com/akyairhashvil/tdelta/internal/config"
	"github.com/akyairhashvil/tdelta/internal/models"
)

const day = 24 * time.Hour

// localLayouts are parsed in the caller's location.
var localLayouts = []string{
	config.TargetLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// ParseTarget parses a target moment. Layouts without an offset are read in
// loc. A bare date is read as UTC midnight, matching browser date parsing.
func ParseTarget(target string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(target)
	if s == "" {
		return time.Time{}, &ParseError{Input: target}
	}
	if loc == nil {
		loc = time.Local
	}
	var lastErr error
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, &ParseError{Input: target, Err: lastErr}
}

// Remaining decomposes target-now into whole days, hours, minutes and
// seconds, flooring at each step. A target at or before now yields zero.
func Remaining(target, now time.Time) models.RemainingTime {
	d := target.Sub(now)
	if d <= 0 {
		return models.RemainingTime{}
	}
	return models.RemainingTime{
		Days:    int(d / day),
		Hours:   int((d % day) / time.Hour),
		Minutes: int((d % time.Hour) / time.Minute),
		Seconds: int((d % time.Minute) / time.Second),
	}
}

// ComputeRemaining parses target in now's location and returns the time left.
// The error satisfies errors.Is(err, ErrInvalidTarget) when target is unparseable.
func ComputeRemaining(target string, now time.Time) (models.RemainingTime, error) {
	t, err := ParseTarget(target, now.Location())
	if err != nil {
		return models.RemainingTime{}, err
	}
	return Remaining(t, now), nil
}

// DefaultTarget returns tomorrow at 09:00 in now's location, formatted for
// the target input.
func DefaultTarget(now time.Time) string {
	t := time.Date(now.Year(), now.Month(), now.Day()+config.DefaultTargetDays,
		config.DefaultTargetHour, config.DefaultTargetMinute, 0, 0, now.Location())
	return t.Format(config.TargetLayout)
}

// ResolveMode picks what to display. An empty target wins over everything,
// then a finished countdown, then a running one.
func ResolveMode(target string, remaining *models.RemainingTime) models.DisplayMode {
	switch {
	case strings.TrimSpace(target) == "":
		return models.ModeAwaitingInput
	case models.Finished(remaining):
		return models.ModeFinished
	case remaining != nil:
		return models.ModeCounting
	default:
		return models.ModeNone
	}
}

// Snapshot is the result of one tick.
type Snapshot struct {
	Target    string
	At        time.Time
	Remaining *models.RemainingTime
	Err       error
	Mode      models.DisplayMode
}

// Evaluate runs one tick's worth of work against target at now.
func Evaluate(target string, now time.Time) Snapshot {
	s := Snapshot{Target: target, At: now}
	if strings.TrimSpace(target) != "" {
		r, err := ComputeRemaining(target, now)
		if err != nil {
			s.Err = err
		} else {
			s.Remaining = &r
		}
	}
	s.Mode = ResolveMode(target, s.Remaining)
	return s
}
