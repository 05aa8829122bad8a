package economy

import (
	"fmt"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// PurchaseUpgrade buys a catalog upgrade for the current run
func PurchaseUpgrade(state *domain.GameState, id domain.UpgradeID) (domain.UpgradePurchase, error) {
	upg, ok := domain.LookupUpgrade(id)
	if !ok {
		return domain.UpgradePurchase{}, fmt.Errorf(ErrMsgUpgradeNotFoundFmt, domain.ErrUpgradeNotFound, string(id))
	}
	if state.HasUpgrade(id) {
		return domain.UpgradePurchase{}, fmt.Errorf(ErrMsgUpgradeOwnedFmt, domain.ErrUpgradeOwned, upg.Name)
	}
	if !upg.IsAvailable(state) {
		return domain.UpgradePurchase{}, fmt.Errorf(ErrMsgUpgradeLockedFmt, domain.ErrUpgradeLocked, upg.Name, upg.Requires.MinCount, upg.Requires.Unit)
	}
	if state.Food < upg.Cost {
		return domain.UpgradePurchase{}, fmt.Errorf(ErrMsgCannotAffordUpgradeFmt, domain.ErrInsufficientFunds, upg.Name, upg.Cost, state.Food)
	}

	if state.Upgrades == nil {
		state.Upgrades = make(map[domain.UpgradeID]bool)
	}
	state.Food -= upg.Cost
	state.Upgrades[id] = true

	return domain.UpgradePurchase{ID: id, Cost: upg.Cost, FoodAfter: state.Food}, nil
}

// AvailableUpgrades lists catalog entries that are unowned and unlocked
func AvailableUpgrades(state *domain.GameState) []domain.Upgrade {
	var out []domain.Upgrade
	for _, upg := range domain.Upgrades() {
		if state.HasUpgrade(upg.ID) || !upg.IsAvailable(state) {
			continue
		}
		out = append(out, upg)
	}
	return out
}

// OwnedUpgrades lists owned upgrade ids in catalog order
func OwnedUpgrades(state *domain.GameState) []domain.UpgradeID {
	var out []domain.UpgradeID
	for _, upg := range domain.Upgrades() {
		if state.HasUpgrade(upg.ID) {
			out = append(out, upg.ID)
		}
	}
	return out
}
