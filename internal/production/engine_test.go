package production

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

func newState() *domain.GameState {
	return domain.NewGameState(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestComputeRate_FreshStateIsOne(t *testing.T) {
	engine := NewEngine()
	state := newState()

	assert.Equal(t, 1.0, engine.ComputeRate(state))
	assert.Equal(t, 1.0, state.SpeedMult)
}

func TestMilestoneMultiplier(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 1}, {1, 1}, {24, 1}, {25, 2}, {49, 2}, {50, 4}, {75, 8}, {100, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MilestoneMultiplier(tt.count), "count=%d", tt.count)
	}
}

func TestComputeRate_MilestoneDoublesMonkeys(t *testing.T) {
	engine := NewEngine()
	state := newState()

	state.Units[domain.UnitMonkey].Count = 24
	assert.Equal(t, 24.0, engine.ComputeRate(state))

	state.Units[domain.UnitMonkey].Count = 25
	assert.Equal(t, 50.0, engine.ComputeRate(state))
}

func TestComputeRate_Synergies(t *testing.T) {
	engine := NewEngine()
	state := newState()
	state.Units[domain.UnitMonkey].Count = 10
	state.Units[domain.UnitZebra].Count = 2
	state.Units[domain.UnitGorilla].Count = 3

	b := engine.Breakdown(state)
	require.Len(t, b.Units, 5)

	monkeys := 10.0 * (1 + 0.005*2) * (1 + 0.01*3)
	zebras := 2 * 10.0 * (1 + 0.01*3)
	gorillas := 3 * 25.0
	assert.InDelta(t, monkeys, b.Units[0].Output, 1e-9)
	assert.InDelta(t, zebras, b.Units[1].Output, 1e-9)
	assert.InDelta(t, gorillas, b.Units[2].Output, 1e-9)
	assert.InDelta(t, monkeys+zebras+gorillas, b.Rate, 1e-9)
}

func TestComputeRate_GlobalMultipliers(t *testing.T) {
	engine := NewEngine()
	state := newState()
	state.Units[domain.UnitParrot].Count = 2
	state.Relics = 50

	// base = 1 monkey + 2 parrots * 0.5, speed = 1.2, relic = 1.5
	assert.InDelta(t, 2*1.2*1.5, engine.ComputeRate(state), 1e-9)
	assert.InDelta(t, 1.2, state.SpeedMult, 1e-12)
}

func TestComputeRate_UpgradeContributions(t *testing.T) {
	engine := NewEngine()
	state := newState()
	state.Units[domain.UnitMonkey].Count = 50
	base := engine.ComputeRate(state)

	state.Upgrades[domain.UpgradeBananaDiet] = true
	assert.InDelta(t, base*2, engine.ComputeRate(state), 1e-9)

	state.Upgrades[domain.UpgradeJungleDrums] = true
	assert.InDelta(t, base*2*1.2, engine.ComputeRate(state), 1e-9)
	assert.InDelta(t, 1.2, state.SpeedMult, 1e-12)

	contribs := engine.Contributions(state)
	require.Len(t, contribs, 2)
	assert.Equal(t, domain.UpgradeBananaDiet, contribs[0].Source)
	assert.Equal(t, domain.UpgradeJungleDrums, contribs[1].Source)
}

func TestComputeRate_StrictlyIncreasing(t *testing.T) {
	engine := NewEngine()

	for _, unit := range domain.UnitTypes() {
		t.Run(string(unit), func(t *testing.T) {
			state := newState()
			prev := engine.ComputeRate(state)
			for i := 0; i < 60; i++ {
				state.Units[unit].Count++
				rate := engine.ComputeRate(state)
				assert.Greater(t, rate, prev, "count=%d", state.Units[unit].Count)
				prev = rate
			}
		})
	}

	t.Run("relics", func(t *testing.T) {
		state := newState()
		prev := engine.ComputeRate(state)
		for i := 0; i < 20; i++ {
			state.Relics++
			rate := engine.ComputeRate(state)
			assert.Greater(t, rate, prev)
			prev = rate
		}
	})
}

func TestComputeRate_NonNegativeWithMissingRecords(t *testing.T) {
	engine := NewEngine()
	state := &domain.GameState{Units: map[domain.UnitType]*domain.UnitRecord{}}
	assert.Equal(t, 0.0, engine.ComputeRate(state))
}
