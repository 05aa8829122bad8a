package handler

// Log messages
const (
	LogMsgUnitsPurchased      = "Units purchased"
	LogMsgUpgradePurchased    = "Upgrade purchased"
	LogMsgPrestigeCompleted   = "Prestige completed"
	LogMsgGameWiped           = "Game wiped"
	LogMsgSaveImported        = "Save imported"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeJSONFailed    = "Failed to encode JSON response"
	LogMsgWriteResponseFailed = "Failed to write response buffer"
)
