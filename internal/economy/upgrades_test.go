package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

func TestPurchaseUpgrade(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*domain.GameState)
		id      domain.UpgradeID
		wantErr error
	}{
		{
			name:    "unknown id",
			setup:   func(s *domain.GameState) {},
			id:      "upg_nope",
			wantErr: domain.ErrUpgradeNotFound,
		},
		{
			name:    "locked below monkey requirement",
			setup:   func(s *domain.GameState) { s.Food = 1e6; s.Units[domain.UnitMonkey].Count = 24 },
			id:      domain.UpgradeBananaDiet,
			wantErr: domain.ErrUpgradeLocked,
		},
		{
			name:    "cannot afford",
			setup:   func(s *domain.GameState) { s.Food = 9999; s.Units[domain.UnitMonkey].Count = 25 },
			id:      domain.UpgradeBananaDiet,
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name: "already owned",
			setup: func(s *domain.GameState) {
				s.Food = 1e6
				s.Units[domain.UnitMonkey].Count = 25
				s.Upgrades[domain.UpgradeBananaDiet] = true
			},
			id:      domain.UpgradeBananaDiet,
			wantErr: domain.ErrUpgradeOwned,
		},
		{
			name:  "success",
			setup: func(s *domain.GameState) { s.Food = 1e4; s.Units[domain.UnitMonkey].Count = 25 },
			id:    domain.UpgradeBananaDiet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState()
			tt.setup(state)
			before := state.Clone()

			res, err := PurchaseUpgrade(state, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, state)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0.0, res.FoodAfter)
			assert.True(t, state.HasUpgrade(tt.id))
		})
	}
}

func TestAvailableUpgrades(t *testing.T) {
	state := newState()
	assert.Empty(t, AvailableUpgrades(state))

	state.Units[domain.UnitMonkey].Count = 50
	avail := AvailableUpgrades(state)
	require.Len(t, avail, 2)
	assert.Equal(t, domain.UpgradeBananaDiet, avail[0].ID)
	assert.Equal(t, domain.UpgradeJungleDrums, avail[1].ID)

	state.Upgrades[domain.UpgradeBananaDiet] = true
	avail = AvailableUpgrades(state)
	require.Len(t, avail, 1)
	assert.Equal(t, []domain.UpgradeID{domain.UpgradeBananaDiet}, OwnedUpgrades(state))
}
