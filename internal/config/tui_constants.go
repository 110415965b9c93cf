package config

// Layout constants.
const (
	// UnitBoxWidth is the inner width of a single time unit box.
	UnitBoxWidth = 10

	// UnitGap is the number of columns between unit boxes.
	UnitGap = 2

	// UnitsPerRowCompact is how many boxes share a row when the full row
	// does not fit the terminal.
	UnitsPerRowCompact = 2

	// InputWidth is the visible width of the target input.
	InputWidth = 20
)

// Input constraints.
const (
	// MaxTargetLength bounds the target input. Long enough for RFC 3339
	// with fractional seconds and an offset.
	MaxTargetLength = 35
)
