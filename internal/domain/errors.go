package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds       = "insufficient food"
	ErrMsgInvalidPurchaseQuantity = "purchase quantity must be positive"
	ErrMsgInvalidBuyMode          = "invalid buy mode"
	ErrMsgUnknownUnit             = "unknown unit type"

	// Upgrade errors
	ErrMsgUpgradeNotFound = "upgrade not found"
	ErrMsgUpgradeOwned    = "upgrade already owned"
	ErrMsgUpgradeLocked   = "upgrade requirements not met"

	// Prestige errors
	ErrMsgNoPrestigeGain = "no relics available from prestige"

	// Persistence errors
	ErrMsgCorruptSave = "corrupt save"

	// Session errors
	ErrMsgSessionClosed = "session closed"
)

// Common domain errors
// Every rejected operation returns one of these and leaves GameState untouched.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds       = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidPurchaseQuantity = errors.New(ErrMsgInvalidPurchaseQuantity)
	ErrInvalidBuyMode          = errors.New(ErrMsgInvalidBuyMode)
	ErrUnknownUnit             = errors.New(ErrMsgUnknownUnit)

	ErrUpgradeNotFound = errors.New(ErrMsgUpgradeNotFound)
	ErrUpgradeOwned    = errors.New(ErrMsgUpgradeOwned)
	ErrUpgradeLocked   = errors.New(ErrMsgUpgradeLocked)

	ErrNoPrestigeGain = errors.New(ErrMsgNoPrestigeGain)

	ErrCorruptSave = errors.New(ErrMsgCorruptSave)

	ErrSessionClosed = errors.New(ErrMsgSessionClosed)
)

// IsPurchaseRejected reports whether err is a recoverable purchase rejection.
// An unresolvable quantity is treated the same as running out of food.
func IsPurchaseRejected(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrInvalidPurchaseQuantity)
}
