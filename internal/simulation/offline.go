package simulation

import (
	"math"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/production"
)

// OfflineCapSeconds is the longest gap that offline catch-up will pay for
func OfflineCapSeconds(state *domain.GameState) int64 {
	minutes := state.OfflineCapMinutesBase + ElephantOfflineMinutes*state.Count(domain.UnitElephant)
	return int64(minutes) * 60
}

// ApplyOffline grants production for the time elapsed since lastTickAt (epoch ms),
// capped by OfflineCapSeconds. The whole gap is paid at the rate the state has now;
// bursts, caches and purchases are not simulated during it. A zero lastTickAt
// means the game never ticked and nothing is granted.
func ApplyOffline(state *domain.GameState, lastTickAt int64, now time.Time) float64 {
	return applyOffline(production.NewEngine(), state, lastTickAt, now)
}

func applyOffline(engine *production.Engine, state *domain.GameState, lastTickAt int64, now time.Time) float64 {
	if lastTickAt <= 0 {
		return 0
	}

	elapsed := int64(math.Floor(float64(now.UnixMilli()-lastTickAt) / 1000))
	if elapsed <= 0 {
		return 0
	}
	if capSec := OfflineCapSeconds(state); elapsed > capSec {
		elapsed = capSec
	}

	gain := engine.ComputeRate(state) * float64(elapsed)
	state.AddProduction(gain)
	return gain
}
