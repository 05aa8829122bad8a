package domain

// UpgradeID identifies a one-time permanent boost
type UpgradeID string

const (
	UpgradeBananaDiet   UpgradeID = "upg_monk_x2"
	UpgradeThickStripes UpgradeID = "upg_zeb_x2"
	UpgradeJungleDrums  UpgradeID = "upg_speed_20"
)

// UpgradeEffect describes what an owned upgrade contributes to the rate.
// Unit is empty when the upgrade only adds speed.
type UpgradeEffect struct {
	Unit       UnitType `json:"unit,omitempty"`
	OutputMult float64  `json:"output_mult,omitempty"`
	SpeedBonus float64  `json:"speed_bonus,omitempty"`
}

// UpgradeRequirement is the unit-count precondition for buying an upgrade
type UpgradeRequirement struct {
	Unit     UnitType `json:"unit"`
	MinCount int      `json:"min_count"`
}

// Upgrade is a catalog entry
type Upgrade struct {
	ID       UpgradeID          `json:"id"`
	Name     string             `json:"name"`
	Cost     float64            `json:"cost"`
	Requires UpgradeRequirement `json:"requires"`
	Effect   UpgradeEffect      `json:"effect"`
}

var upgradeCatalog = []Upgrade{
	{
		ID:       UpgradeBananaDiet,
		Name:     "Banana Diet (Monkeys x2)",
		Cost:     1e4,
		Requires: UpgradeRequirement{Unit: UnitMonkey, MinCount: 25},
		Effect:   UpgradeEffect{Unit: UnitMonkey, OutputMult: 2},
	},
	{
		ID:       UpgradeThickStripes,
		Name:     "Thick Stripes (Zebras x2)",
		Cost:     1e8,
		Requires: UpgradeRequirement{Unit: UnitZebra, MinCount: 10},
		Effect:   UpgradeEffect{Unit: UnitZebra, OutputMult: 2},
	},
	{
		ID:       UpgradeJungleDrums,
		Name:     "Jungle Drums (+20% speed)",
		Cost:     1e7,
		Requires: UpgradeRequirement{Unit: UnitMonkey, MinCount: 50},
		Effect:   UpgradeEffect{SpeedBonus: 0.20},
	},
}

// Upgrades returns the upgrade catalog in display order
func Upgrades() []Upgrade {
	out := make([]Upgrade, len(upgradeCatalog))
	copy(out, upgradeCatalog)
	return out
}

// LookupUpgrade finds a catalog entry by id
func LookupUpgrade(id UpgradeID) (Upgrade, bool) {
	for _, u := range upgradeCatalog {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// IsAvailable reports whether the unit-count precondition holds for the state
func (u Upgrade) IsAvailable(s *GameState) bool {
	return s.Count(u.Requires.Unit) >= u.Requires.MinCount
}
