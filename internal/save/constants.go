package save

// Store keys
const (
	// DefaultKey is the single save slot used by the command-line client
	DefaultKey = "aki.save"

	keySeparator = "/"
)

// schemaName is the resource name the embedded schema is registered under
const schemaName = "save.schema.json"

// ==================== Error Messages ====================

const (
	ErrMsgParseFailedFmt      = "%w: %v"
	ErrMsgSchemaFailedFmt     = "%w: %v"
	ErrMsgMarshalFailed       = "failed to marshal save: %w"
	ErrMsgStoreGetFailed      = "failed to read save %q: %w"
	ErrMsgStoreSetFailed      = "failed to write save %q: %w"
	ErrMsgSchemaRegisterFatal = "embedded save schema failed to compile: %v"
	ErrMsgCreateDirFailed     = "failed to create save dir %s: %w"
	ErrMsgReadFileFailed      = "failed to read %s: %w"
	ErrMsgWriteFileFailed     = "failed to write %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSaveMigrated = "Save migrated to current economy"
	LogMsgSaveRepaired = "Save repaired"
	LogMsgNoSaveFound  = "No save found, starting fresh"
	LogMsgCorruptSave  = "Corrupt save, starting fresh"
	LogMsgSaveLoaded   = "Save loaded"
)
