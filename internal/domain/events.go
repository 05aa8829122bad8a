package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "units.purchased")
const (
	// EventTypeUnitsPurchased is published after a successful unit purchase
	EventTypeUnitsPurchased = "units.purchased"

	// EventTypeUpgradePurchased is published after a successful upgrade purchase
	EventTypeUpgradePurchased = "upgrade.purchased"

	// EventTypeBurstTriggered is published when one or more elephants burst during a tick
	EventTypeBurstTriggered = "burst.triggered"

	// EventTypeCacheGranted is published when the parrot cache timer fires with parrots owned
	EventTypeCacheGranted = "cache.granted"

	// EventTypePrestigeCompleted is published after a soft reset
	EventTypePrestigeCompleted = "prestige.completed"

	// EventTypeOfflineGranted is published once when a session resumes with catch-up food
	EventTypeOfflineGranted = "offline.granted"

	// EventTypeGameSaved is published after a save reaches the store
	EventTypeGameSaved = "game.saved"

	// EventTypeSaveFailed is published when a save could not be written
	EventTypeSaveFailed = "save.failed"

	// EventTypeGameWiped is published when a player restarts from a fresh state
	EventTypeGameWiped = "game.wiped"

	// EventTypeSaveImported is published when a player replaces their state from an export
	EventTypeSaveImported = "save.imported"
)
