package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyPlayerID = "player_id"
)

// Save reasons carried by GameSavedPayloadV1
const (
	SaveReasonAutosave = "autosave"
	SaveReasonManual   = "manual"
	SaveReasonEvicted  = "evicted"
	SaveReasonShutdown = "shutdown"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
