package production

import (
	"math"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// Contribution is the effect one owned upgrade has on the rate
type Contribution struct {
	Source     domain.UpgradeID
	Unit       domain.UnitType
	OutputMult float64
	SpeedBonus float64
}

// TypeOutput is one unit type's share of the base rate, before global multipliers
type TypeOutput struct {
	Type      domain.UnitType `json:"type"`
	Count     int             `json:"count"`
	Milestone float64         `json:"milestone"`
	Raw       float64         `json:"raw"`
	Output    float64         `json:"output"`
}

// Breakdown is the full decomposition of a rate computation
type Breakdown struct {
	Units     []TypeOutput `json:"units"`
	Base      float64      `json:"base"`
	Speed     float64      `json:"speed"`
	RelicMult float64      `json:"relic_mult"`
	Rate      float64      `json:"rate"`
}

// Engine provides pure production logic (no I/O, no randomness)
type Engine struct{}

// NewEngine creates a new production engine
func NewEngine() *Engine {
	return &Engine{}
}

// MilestoneMultiplier doubles output for every full MilestoneStep owned
func MilestoneMultiplier(count int) float64 {
	if count < MilestoneStep {
		return 1
	}
	return math.Pow(2, float64(count/MilestoneStep))
}

// Contributions lists the effects of every owned upgrade in catalog order
func (e *Engine) Contributions(state *domain.GameState) []Contribution {
	var out []Contribution
	for _, upg := range domain.Upgrades() {
		if !state.HasUpgrade(upg.ID) {
			continue
		}
		out = append(out, Contribution{
			Source:     upg.ID,
			Unit:       upg.Effect.Unit,
			OutputMult: upg.Effect.OutputMult,
			SpeedBonus: upg.Effect.SpeedBonus,
		})
	}
	return out
}

// Breakdown computes the rate and its per-type decomposition.
// It refreshes state.SpeedMult, which is a cached projection for display.
func (e *Engine) Breakdown(state *domain.GameState) Breakdown {
	contributions := e.Contributions(state)

	upgradeMult := make(map[domain.UnitType]float64)
	speedBonus := 0.0
	for _, c := range contributions {
		if c.Unit != "" && c.OutputMult > 0 {
			if m, ok := upgradeMult[c.Unit]; ok {
				upgradeMult[c.Unit] = m * c.OutputMult
			} else {
				upgradeMult[c.Unit] = c.OutputMult
			}
		}
		speedBonus += c.SpeedBonus
	}

	zebras := float64(state.Count(domain.UnitZebra))
	gorillas := float64(state.Count(domain.UnitGorilla))

	b := Breakdown{Units: make([]TypeOutput, 0, len(domain.UnitTypes()))}
	for _, t := range domain.UnitTypes() {
		rec := state.Units[t]
		if rec == nil {
			b.Units = append(b.Units, TypeOutput{Type: t, Milestone: 1})
			continue
		}

		milestone := MilestoneMultiplier(rec.Count)
		raw := float64(rec.Count) * rec.Prod * milestone
		out := raw

		switch t {
		case domain.UnitMonkey:
			out *= (1 + ZebraMonkeyBonus*zebras) * (1 + GorillaBonus*gorillas)
		case domain.UnitZebra:
			out *= 1 + GorillaBonus*gorillas
		}
		if m, ok := upgradeMult[t]; ok {
			out *= m
		}

		b.Units = append(b.Units, TypeOutput{Type: t, Count: rec.Count, Milestone: milestone, Raw: raw, Output: out})
		b.Base += out
	}

	b.Speed = 1 + ParrotSpeedBonus*float64(state.Count(domain.UnitParrot)) + speedBonus
	b.RelicMult = 1 + RelicBonus*float64(state.Relics)
	b.Rate = b.Base * b.Speed * b.RelicMult

	state.SpeedMult = b.Speed
	return b
}

// ComputeRate returns food per second for the current state
func (e *Engine) ComputeRate(state *domain.GameState) float64 {
	return e.Breakdown(state).Rate
}
