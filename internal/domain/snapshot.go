package domain

// UnitView is the per-type projection shown by presentation layers
type UnitView struct {
	Type      UnitType `json:"type"`
	Name      string   `json:"name"`
	Emoji     string   `json:"emoji"`
	Count     int      `json:"count"`
	NextPrice float64  `json:"next_price"`
	Output    float64  `json:"output"`
	Milestone float64  `json:"milestone"`
}

// Snapshot is a read-only projection of a game for polling renderers
type Snapshot struct {
	Food              float64     `json:"food"`
	FoodDisplay       string      `json:"food_display"`
	Rate              float64     `json:"rate"`
	RateDisplay       string      `json:"rate_display"`
	TotalProduced     float64     `json:"total_produced"`
	Relics            int         `json:"relics"`
	PrestigeGain      int         `json:"prestige_gain"`
	SpeedMult         float64     `json:"speed_mult"`
	TotalUnits        int         `json:"total_units"`
	Units             []UnitView  `json:"units"`
	OwnedUpgrades     []UpgradeID `json:"owned_upgrades"`
	AvailableUpgrades []Upgrade   `json:"available_upgrades"`
	LastTickAt        int64       `json:"last_tick"`
}
