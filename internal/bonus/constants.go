package bonus

// Burst and cache tuning
const (
	// BurstChancePerMinute is each elephant's independent chance to burst per minute
	BurstChancePerMinute = 0.10

	// BurstProdMultiplier scales elephant prod into the flat burst grant
	BurstProdMultiplier = 10.0

	// CacheIntervalSec is how often the parrot cache timer fires
	CacheIntervalSec = 300.0

	// CacheShare is the fraction of one hour's production granted per parrot
	CacheShare = 0.05

	secondsPerMinute = 60.0
	secondsPerHour   = 3600.0
)
