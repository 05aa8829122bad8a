package session

import "time"

// Defaults used when Config leaves a field zero
const (
	DefaultTickRate     = 30
	DefaultMaxTickDelta = time.Second
	DefaultIdleTTL      = 15 * time.Minute
	DefaultMaxSessions  = 256
)

// Log messages
const (
	LogMsgSessionOpened      = "Session opened"
	LogMsgSessionStopped     = "Session stopped"
	LogMsgOfflineGranted     = "Offline production granted"
	LogMsgCorruptSaveReset   = "Corrupt save replaced with a fresh game"
	LogMsgSaveFailed         = "Save failed"
	LogMsgSaved              = "Game saved"
	LogMsgStaleSaveSkipped   = "Older save snapshot skipped"
	LogMsgPublishFailed      = "Failed to publish game event"
	LogMsgSessionEvicted     = "Session evicted"
	LogMsgAutosaveStarted    = "Autosave started"
	LogMsgAutosaveCompleted  = "Autosave completed"
	LogMsgShutdownIncomplete = "Session shutdown incomplete"
	LogMsgWaitingForRetire   = "Waiting for evicted session to finish saving"
)

// Error messages
const (
	ErrMsgOpenSessionFailed = "failed to open session for %s: %w"
	ErrMsgManagerClosed     = "session manager closed"
	ErrMsgSaveFailedFmt     = "failed to save %s: %w"
)
