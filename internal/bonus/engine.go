package bonus

import (
	"math"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/utils"
)

// Result reports what the bonus pass granted during one step
type Result struct {
	Bursts      int     `json:"bursts"`
	BurstAmount float64 `json:"burst_amount"`
	CacheFired  bool    `json:"cache_fired"`
	CacheAmount float64 `json:"cache_amount"`
}

// Total is everything granted this step
func (r Result) Total() float64 {
	return r.BurstAmount + r.CacheAmount
}

// Engine applies stochastic bonuses on top of steady production.
// All randomness comes from rnd so tests can replay exact sequences.
type Engine struct {
	rnd func() float64
}

// NewEngine creates a bonus engine. A nil rnd uses utils.RandomFloat.
func NewEngine(rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{rnd: rnd}
}

// BurstProbability is the per-elephant trigger chance over dt seconds
func BurstProbability(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-BurstChancePerMinute, dt/secondsPerMinute)
}

// Apply runs bursts and the parrot cache for a dt-second step.
// rate is evaluated lazily, only when a cache actually pays out.
func (e *Engine) Apply(state *domain.GameState, dt float64, rate func() float64) Result {
	var res Result

	if rec := state.Units[domain.UnitElephant]; rec != nil && rec.Count > 0 {
		p := BurstProbability(dt)
		grant := BurstProdMultiplier * rec.Prod
		for i := 0; i < rec.Count; i++ {
			if e.rnd() < p {
				res.Bursts++
				res.BurstAmount += grant
			}
		}
		state.AddProduction(res.BurstAmount)
	}

	state.ParrotCacheTimerSec += dt
	if state.ParrotCacheTimerSec >= CacheIntervalSec {
		if parrots := state.Count(domain.UnitParrot); parrots > 0 {
			res.CacheFired = true
			res.CacheAmount = float64(parrots) * CacheShare * rate() * secondsPerHour
			state.AddProduction(res.CacheAmount)
		}
		state.ParrotCacheTimerSec = 0
	}

	return res
}
