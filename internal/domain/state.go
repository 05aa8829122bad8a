package domain

import "time"

// Run defaults applied by the fresh-state factory
const (
	// DefaultOfflineCapMinutes is the base ceiling for offline catch-up
	DefaultOfflineCapMinutes = 60

	// StartingMonkeys is the primary-unit count every run begins with
	StartingMonkeys = 1
)

// GameState is the save-shaped aggregate root of a run.
// JSON keys match the browser save format so existing saves load unchanged.
type GameState struct {
	Food                  float64                  `json:"food"`
	Relics                int                      `json:"relics"`
	TotalProduced         float64                  `json:"totalProduced"`
	Units                 map[UnitType]*UnitRecord `json:"units"`
	Upgrades              map[UpgradeID]bool       `json:"upgrades"`
	LastSaveAt            int64                    `json:"lastSave"`
	LastTickAt            int64                    `json:"lastTick"`
	OfflineCapMinutesBase int                      `json:"offlineCapMins"`
	SpeedMult             float64                  `json:"speedMult"`
	EconomyVersion        string                   `json:"economyVersion,omitempty"`
	ParrotCacheTimerSec   float64                  `json:"_parrotTimer"`
}

// NewGameState creates the state for a brand new run: one monkey, no food,
// no relics and no upgrades. Upgrades are run-scoped, so prestige and wipe
// both go through this factory and drop them.
func NewGameState(now time.Time) *GameState {
	units := make(map[UnitType]*UnitRecord, len(roster))
	for _, spec := range roster {
		units[spec.Type] = spec.NewRecord(0)
	}
	units[UnitMonkey].Count = StartingMonkeys

	ms := now.UnixMilli()
	return &GameState{
		Units:                 units,
		Upgrades:              make(map[UpgradeID]bool),
		LastSaveAt:            ms,
		LastTickAt:            ms,
		OfflineCapMinutesBase: DefaultOfflineCapMinutes,
		SpeedMult:             1,
		EconomyVersion:        EconomyVersionCurrent,
	}
}

// Count returns the owned count for a unit type, 0 if the record is missing
func (s *GameState) Count(t UnitType) int {
	if rec, ok := s.Units[t]; ok && rec != nil {
		return rec.Count
	}
	return 0
}

// TotalUnits sums counts across all unit records
func (s *GameState) TotalUnits() int {
	total := 0
	for _, rec := range s.Units {
		if rec != nil {
			total += rec.Count
		}
	}
	return total
}

// HasUpgrade reports whether the upgrade was bought this run
func (s *GameState) HasUpgrade(id UpgradeID) bool {
	return s.Upgrades[id]
}

// AddProduction credits food and lifetime production together
func (s *GameState) AddProduction(amount float64) {
	if amount <= 0 {
		return
	}
	s.Food += amount
	s.TotalProduced += amount
}

// Clone returns a deep copy, used for snapshots handed outside the owning goroutine
func (s *GameState) Clone() *GameState {
	c := *s
	c.Units = make(map[UnitType]*UnitRecord, len(s.Units))
	for t, rec := range s.Units {
		if rec == nil {
			continue
		}
		r := *rec
		c.Units[t] = &r
	}
	c.Upgrades = make(map[UpgradeID]bool, len(s.Upgrades))
	for id, owned := range s.Upgrades {
		c.Upgrades[id] = owned
	}
	return &c
}
