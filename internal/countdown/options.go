package countdown

import (
	"time"

	"github.com/akyairhashvil/tdelta/internal/config"
)

// Option configures a Driver.
type Option func(*Options)

// Options are the settings a Driver is created with.
type Options struct {
	Clock    Clock
	Interval time.Duration
}

func defaultOptions() Options {
	return Options{
		Clock:    RealClock{},
		Interval: config.TickInterval,
	}
}

// WithClock sets the time source. Default: RealClock.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithInterval sets the tick period. Default: config.TickInterval.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}
