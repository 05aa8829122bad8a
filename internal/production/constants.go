package production

// Balance constants for the rate formula
const (
	// MilestoneStep is the count interval at which a type's output doubles
	MilestoneStep = 25

	// ZebraMonkeyBonus is the monkey output bonus per zebra
	ZebraMonkeyBonus = 0.005

	// GorillaBonus is the monkey and zebra output bonus per gorilla
	GorillaBonus = 0.01

	// ParrotSpeedBonus is the global speed bonus per parrot
	ParrotSpeedBonus = 0.10

	// RelicBonus is the global production bonus per relic
	RelicBonus = 0.01
)
