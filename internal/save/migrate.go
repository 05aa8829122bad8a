package save

import (
	"math"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// Migrate rewrites every unit record's balance constants from the roster when
// the save predates the current economy. Running it twice is a no-op.
// It reports whether anything changed.
func Migrate(state *domain.GameState) bool {
	if state.EconomyVersion == domain.EconomyVersionCurrent {
		return false
	}

	for _, spec := range domain.Roster() {
		rec := state.Units[spec.Type]
		if rec == nil {
			continue
		}
		rec.Base = spec.BaseCost
		rec.Growth = spec.Growth
		rec.Prod = spec.BaseProd
	}
	state.EconomyVersion = domain.EconomyVersionCurrent
	return true
}

// Repair restores structural invariants a save may have lost: one record per
// unit type with usable balance constants, no unknown unit types, usable
// defaults, and at least one unit owned. It reports whether anything changed.
func Repair(state *domain.GameState) bool {
	changed := false

	if state.Units == nil {
		state.Units = make(map[domain.UnitType]*domain.UnitRecord)
		changed = true
	}
	for t := range state.Units {
		if !t.IsValid() {
			delete(state.Units, t)
			changed = true
		}
	}
	for _, spec := range domain.Roster() {
		rec := state.Units[spec.Type]
		if rec == nil {
			state.Units[spec.Type] = spec.NewRecord(0)
			changed = true
			continue
		}
		if reseedBalance(rec, spec) {
			changed = true
		}
	}

	if state.Upgrades == nil {
		state.Upgrades = make(map[domain.UpgradeID]bool)
		changed = true
	}
	for id, owned := range state.Upgrades {
		if _, ok := domain.LookupUpgrade(id); !ok || !owned {
			delete(state.Upgrades, id)
			changed = true
		}
	}

	if state.OfflineCapMinutesBase <= 0 {
		state.OfflineCapMinutesBase = domain.DefaultOfflineCapMinutes
		changed = true
	}
	if state.SpeedMult <= 0 {
		state.SpeedMult = 1
		changed = true
	}

	if state.TotalUnits() == 0 {
		state.Units[domain.UnitMonkey].Count = domain.StartingMonkeys
		changed = true
	}

	return changed
}

// reseedBalance replaces missing or unusable balance constants with the roster's.
// A zero base or a shrinking growth factor would make units free.
func reseedBalance(rec *domain.UnitRecord, spec domain.UnitSpec) bool {
	changed := false
	if !usable(rec.Base, 0) {
		rec.Base = spec.BaseCost
		changed = true
	}
	if !usable(rec.Growth, 1) {
		rec.Growth = spec.Growth
		changed = true
	}
	if !usable(rec.Prod, 0) {
		rec.Prod = spec.BaseProd
		changed = true
	}
	return changed
}

func usable(v, floor float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > floor
}
