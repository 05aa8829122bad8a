package simulation

import "time"

// Tick driver defaults
const (
	// DefaultTickRate is how many ticks per second a live session runs
	DefaultTickRate = 30

	// DefaultMaxTickDelta bounds a single step so frame hitches cannot grant large jumps
	DefaultMaxTickDelta = time.Second
)

// Offline catch-up tuning
const (
	// ElephantOfflineMinutes extends the offline cap per elephant owned
	ElephantOfflineMinutes = 30
)
