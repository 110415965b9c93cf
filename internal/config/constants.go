package config

import "time"

// Timer durations.
const (
	TickInterval = time.Second
)

// Target moment defaults.
const (
	// TargetLayout is the minute-precision local date-time format used for
	// the target input and the generated default.
	TargetLayout = "2006-01-02T15:04"

	DefaultTargetHour   = 9
	DefaultTargetMinute = 0
	DefaultTargetDays   = 1
)

// Application settings.
const (
	AppName          = "tdelta"
	SettingsFileName = "config.yaml"
	DebugEnvVar      = "TDELTA_DEBUG"
	DebugLogFileName = "tdelta-debug.log"
)
