package economy

// Pricing guards
const (
	// maxBoundarySteps bounds the rounding correction around the closed-form inverse
	maxBoundarySteps = 64
)

// Fixed buy-mode quantities
const (
	QuantityOne     = 1
	QuantityTen     = 10
	QuantityHundred = 100
)

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgUnknownUnitFmt         = "%w: %q"
	ErrMsgInvalidBuyModeFmt      = "%w: %q"
	ErrMsgCannotAffordUnitsFmt   = "%w: %d %s cost %.2f, have %.2f"
	ErrMsgNothingAffordableFmt   = "%w: cannot afford a single %s"
	ErrMsgUpgradeNotFoundFmt     = "%w: %q"
	ErrMsgUpgradeOwnedFmt        = "%w: %s"
	ErrMsgUpgradeLockedFmt       = "%w: %s needs %d %s"
	ErrMsgCannotAffordUpgradeFmt = "%w: %s costs %.2f, have %.2f"
)
