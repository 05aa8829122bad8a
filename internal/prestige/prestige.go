// Package prestige converts lifetime production into relics and performs the soft reset.
package prestige

import (
	"math"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// RelicDivisor is the lifetime production that yields the first relic
const RelicDivisor = 1e12

// MsgNoGain is shown when a player prestiges too early
const MsgNoGain = "Not enough total production yet for relics. Keep growing!"

// Gain returns the relics a prestige would award right now
func Gain(state *domain.GameState) int {
	if state.TotalProduced <= 0 {
		return 0
	}
	gain := int(math.Floor(math.Sqrt(state.TotalProduced / RelicDivisor)))
	if gain < 0 {
		return 0
	}
	return gain
}

// Do performs the soft reset and returns the new state and the relics gained.
// The new run comes from domain.NewGameState, so units, food, lifetime production,
// timers and owned upgrades all reset; only relics carry forward.
// Do does not reject a zero gain; callers that expose prestige to players guard that.
func Do(state *domain.GameState, now time.Time) (*domain.GameState, int) {
	gain := Gain(state)
	next := domain.NewGameState(now)
	next.Relics = state.Relics + gain
	next.OfflineCapMinutesBase = state.OfflineCapMinutesBase
	if next.OfflineCapMinutesBase <= 0 {
		next.OfflineCapMinutesBase = domain.DefaultOfflineCapMinutes
	}
	return next, gain
}
