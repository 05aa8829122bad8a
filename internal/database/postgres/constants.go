package postgres

// Queries
const (
	querySelectSave = `SELECT data FROM game_saves WHERE save_key = $1`

	queryUpsertSave = `
		INSERT INTO game_saves (save_key, data, size_bytes, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (save_key) DO UPDATE
		SET data = EXCLUDED.data,
		    size_bytes = EXCLUDED.size_bytes,
		    updated_at = NOW()`

	queryCountSaves = `SELECT COUNT(*) FROM game_saves`
)

// Error Messages - Save Operations
const (
	ErrMsgFailedToGetSave   = "failed to get save"
	ErrMsgFailedToSetSave   = "failed to set save"
	ErrMsgFailedToCountSave = "failed to count saves"
)
