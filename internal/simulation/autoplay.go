package simulation

import (
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/economy"
)

// MaxPurchasesPerStep bounds the greedy buyer inside one step
const MaxPurchasesPerStep = 1000

// AutoplayReport summarizes a headless greedy run
type AutoplayReport struct {
	Elapsed       time.Duration
	Steps         int
	UnitsBought   map[domain.UnitType]int
	UpgradesOwned []domain.UpgradeID
	FoodSpent     float64
	Bursts        int
	Caches        int
	BonusFood     float64
	// Timeline records the first time each unit type was bought
	Timeline []Milestone
}

// Milestone is the elapsed time at which a unit type was first bought
type Milestone struct {
	Unit    domain.UnitType
	Elapsed time.Duration
}

// candidate is one affordable action with its rate gain per food spent
type candidate struct {
	unit    domain.UnitType
	upgrade domain.UpgradeID
	roi     float64
}

// Autoplay fast-forwards the game for total in fixed steps, spending food
// greedily after each step on whichever affordable unit or upgrade adds the
// most rate per food.
func (g *Game) Autoplay(total, step time.Duration) AutoplayReport {
	report := AutoplayReport{UnitsBought: make(map[domain.UnitType]int)}
	if step <= 0 {
		step = DefaultMaxTickDelta
	}

	seen := make(map[domain.UnitType]bool)
	for _, t := range domain.UnitTypes() {
		seen[t] = g.state.Count(t) > 0
	}

	for report.Elapsed < total {
		dt := min(step, total-report.Elapsed)
		res := g.Tick(dt.Seconds())
		g.state.LastTickAt += dt.Milliseconds()
		report.Elapsed += dt
		report.Steps++
		report.Bursts += res.Bonus.Bursts
		report.BonusFood += res.Bonus.Total()
		if res.Bonus.CacheFired {
			report.Caches++
		}

		for i := 0; i < MaxPurchasesPerStep; i++ {
			c, ok := g.bestCandidate()
			if !ok {
				break
			}
			if c.upgrade != "" {
				p, err := g.PurchaseUpgrade(c.upgrade)
				if err != nil {
					break
				}
				report.FoodSpent += p.Cost
				continue
			}
			p, err := g.Buy(c.unit, domain.BuyOne)
			if err != nil {
				break
			}
			report.FoodSpent += p.Price
			report.UnitsBought[c.unit] += p.Quantity
			if !seen[c.unit] {
				seen[c.unit] = true
				report.Timeline = append(report.Timeline, Milestone{Unit: c.unit, Elapsed: report.Elapsed})
			}
		}
	}

	report.UpgradesOwned = economy.OwnedUpgrades(g.state)
	return report
}

func (g *Game) bestCandidate() (candidate, bool) {
	base := g.production.ComputeRate(g.state)
	var best candidate
	found := false

	consider := func(c candidate) {
		if !found || c.roi > best.roi {
			best, found = c, true
		}
	}

	for _, t := range domain.UnitTypes() {
		q, err := economy.Quote(g.state, t, domain.BuyOne)
		if err != nil || q.Quantity == 0 || q.Price > g.state.Food {
			continue
		}
		trial := g.state.Clone()
		if _, err := economy.Buy(trial, t, domain.BuyOne); err != nil {
			continue
		}
		consider(candidate{unit: t, roi: (g.production.ComputeRate(trial) - base) / q.Price})
	}

	for _, u := range economy.AvailableUpgrades(g.state) {
		if u.Cost > g.state.Food {
			continue
		}
		trial := g.state.Clone()
		if _, err := economy.PurchaseUpgrade(trial, u.ID); err != nil {
			continue
		}
		consider(candidate{upgrade: u.ID, roi: (g.production.ComputeRate(trial) - base) / u.Cost})
	}

	return best, found
}
