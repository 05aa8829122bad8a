package simulation

import (
	"fmt"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/bonus"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/economy"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/prestige"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/production"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/save"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/utils"
)

// TickResult reports what a single step produced
type TickResult struct {
	Dt    float64
	Rate  float64
	Gain  float64
	Bonus bonus.Result
}

// Game is the simulation context for one run. It owns its GameState and every
// mutation goes through its methods. A Game is not safe for concurrent use;
// session.Session serializes access to it.
type Game struct {
	state        *domain.GameState
	production   *production.Engine
	bonus        *bonus.Engine
	maxTickDelta float64
}

// Option configures a Game
type Option func(*Game)

// WithRandom sets the random source used by bursts
func WithRandom(rnd func() float64) Option {
	return func(g *Game) {
		g.bonus = bonus.NewEngine(rnd)
	}
}

// WithMaxTickDelta changes the per-step clamp used by Advance
func WithMaxTickDelta(d time.Duration) Option {
	return func(g *Game) {
		if d > 0 {
			g.maxTickDelta = d.Seconds()
		}
	}
}

// NewGame wraps state in a simulation context. A nil state starts a fresh run.
func NewGame(state *domain.GameState, now time.Time, opts ...Option) *Game {
	if state == nil {
		state = domain.NewGameState(now)
	}
	g := &Game{
		state:        state,
		production:   production.NewEngine(),
		bonus:        bonus.NewEngine(nil),
		maxTickDelta: DefaultMaxTickDelta.Seconds(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State exposes the live state to the owning goroutine
func (g *Game) State() *domain.GameState {
	return g.state
}

// Rate returns the current food per second
func (g *Game) Rate() float64 {
	return g.production.ComputeRate(g.state)
}

// Tick advances the simulation by dt seconds. Callers clamp dt; Tick does not.
func (g *Game) Tick(dt float64) TickResult {
	rate := g.production.ComputeRate(g.state)
	gain := rate * dt
	g.state.AddProduction(gain)

	res := g.bonus.Apply(g.state, dt, func() float64 {
		return g.production.ComputeRate(g.state)
	})
	return TickResult{Dt: dt, Rate: rate, Gain: gain, Bonus: res}
}

// Advance ticks by the wall-clock time since the last tick, clamped to the
// max tick delta, and stamps LastTickAt.
func (g *Game) Advance(now time.Time) TickResult {
	dt := 0.0
	if g.state.LastTickAt > 0 {
		dt = float64(now.UnixMilli()-g.state.LastTickAt) / 1000
	}
	dt = utils.Clamp(dt, 0, g.maxTickDelta)
	g.state.LastTickAt = now.UnixMilli()
	return g.Tick(dt)
}

// Resume pays out offline catch-up for the gap since the saved last tick and
// restarts the tick clock at now. It runs once, before live ticking begins.
func (g *Game) Resume(now time.Time) float64 {
	gain := applyOffline(g.production, g.state, g.state.LastTickAt, now)
	g.state.LastTickAt = now.UnixMilli()
	return gain
}

// Quote prices a purchase without performing it
func (g *Game) Quote(unit domain.UnitType, mode domain.BuyMode) (domain.Quote, error) {
	return economy.Quote(g.state, unit, mode)
}

// Buy purchases units
func (g *Game) Buy(unit domain.UnitType, mode domain.BuyMode) (domain.Purchase, error) {
	return economy.Buy(g.state, unit, mode)
}

// PurchaseUpgrade buys an upgrade for the current run
func (g *Game) PurchaseUpgrade(id domain.UpgradeID) (domain.UpgradePurchase, error) {
	return economy.PurchaseUpgrade(g.state, id)
}

// PrestigeGain is the relics a prestige would award now
func (g *Game) PrestigeGain() int {
	return prestige.Gain(g.state)
}

// Prestige performs the soft reset. Unlike prestige.Do it refuses a zero gain.
func (g *Game) Prestige(now time.Time) (int, error) {
	if prestige.Gain(g.state) == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrNoPrestigeGain, prestige.MsgNoGain)
	}
	next, gain := prestige.Do(g.state, now)
	g.state = next
	return gain, nil
}

// Wipe discards all progress, relics included, and starts a fresh run
func (g *Game) Wipe(now time.Time) {
	g.state = domain.NewGameState(now)
}

// Export stamps LastSaveAt and returns the save string
func (g *Game) Export(now time.Time) (string, error) {
	g.state.LastSaveAt = now.UnixMilli()
	return save.Serialize(g.state)
}

// Import replaces the state with a save string, then pays offline catch-up from
// the imported last tick. A corrupt string leaves the current state untouched.
func (g *Game) Import(raw string, now time.Time) (float64, error) {
	state, err := save.Deserialize(raw)
	if err != nil {
		return 0, err
	}
	save.Migrate(state)
	save.Repair(state)

	g.state = state
	return g.Resume(now), nil
}

// Snapshot is a read-only projection for presentation layers
func (g *Game) Snapshot() domain.Snapshot {
	b := g.production.Breakdown(g.state)

	units := make([]domain.UnitView, 0, len(b.Units))
	for _, out := range b.Units {
		spec, _ := domain.LookupUnit(out.Type)
		units = append(units, domain.UnitView{
			Type:      out.Type,
			Name:      spec.Name,
			Emoji:     spec.Emoji,
			Count:     out.Count,
			NextPrice: economy.NextPrice(g.state, out.Type),
			Output:    out.Output * b.Speed * b.RelicMult,
			Milestone: out.Milestone,
		})
	}

	owned := economy.OwnedUpgrades(g.state)
	if owned == nil {
		owned = []domain.UpgradeID{}
	}
	available := economy.AvailableUpgrades(g.state)
	if available == nil {
		available = []domain.Upgrade{}
	}

	return domain.Snapshot{
		Food:              g.state.Food,
		FoodDisplay:       utils.FormatAmount(g.state.Food),
		Rate:              b.Rate,
		RateDisplay:       utils.FormatRate(b.Rate),
		TotalProduced:     g.state.TotalProduced,
		Relics:            g.state.Relics,
		PrestigeGain:      prestige.Gain(g.state),
		SpeedMult:         b.Speed,
		TotalUnits:        g.state.TotalUnits(),
		Units:             units,
		OwnedUpgrades:     owned,
		AvailableUpgrades: available,
		LastTickAt:        g.state.LastTickAt,
	}
}
