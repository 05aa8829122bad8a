package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/prestige"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPlayerID       = "Invalid player id"
)

// User-facing error messages for domain errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgAuthFailedError      = "Authentication failed. Please check your API key."
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
	ErrMsgTimeoutError         = "The game did not respond in time. Please try again."
	ErrMsgNotEnoughFoodError   = "Not enough food"
	ErrMsgNothingToBuyError    = "You can't afford any of those yet"
	ErrMsgInvalidBuyModeError  = "Buy mode must be one of 1, 10, 100 or max"
	ErrMsgUnknownUnitError     = "Unknown animal"
	ErrMsgUpgradeNotFoundError = "Upgrade not found"
	ErrMsgUpgradeOwnedError    = "You already own that upgrade"
	ErrMsgUpgradeLockedError   = "That upgrade is not unlocked yet"
	ErrMsgCorruptSaveError     = "That save could not be read"
	ErrMsgPrestigeNoGainError  = prestige.MsgNoGain
)

// Success messages for API responses
const (
	MsgUnitsPurchased   = "Purchase complete"
	MsgUpgradePurchased = "Upgrade purchased"
	MsgPrestigeComplete = "Prestige complete"
	MsgGameWiped        = "Game wiped"
	MsgSaveImported     = "Save imported"
	MsgGameSaved        = "Game saved"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages players can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughFoodError
	case errors.Is(err, domain.ErrInvalidPurchaseQuantity):
		return http.StatusConflict, ErrMsgNothingToBuyError
	case errors.Is(err, domain.ErrUpgradeOwned):
		return http.StatusConflict, ErrMsgUpgradeOwnedError
	case errors.Is(err, domain.ErrUpgradeLocked):
		return http.StatusConflict, ErrMsgUpgradeLockedError
	case errors.Is(err, domain.ErrNoPrestigeGain):
		return http.StatusConflict, ErrMsgPrestigeNoGainError
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundError
	case errors.Is(err, domain.ErrInvalidBuyMode):
		return http.StatusBadRequest, ErrMsgInvalidBuyModeError
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, ErrMsgUnknownUnitError
	case errors.Is(err, domain.ErrCorruptSave):
		return http.StatusBadRequest, ErrMsgCorruptSaveError
	case errors.Is(err, domain.ErrSessionClosed), errors.Is(err, session.ErrManagerClosed):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgTimeoutError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped response. Client-side
// rejections are logged at debug, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
