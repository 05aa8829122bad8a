package economy

import (
	"fmt"
	"strings"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// ParseBuyMode converts user input into a BuyMode. "x10" style prefixes are accepted.
func ParseBuyMode(s string) (domain.BuyMode, error) {
	mode := domain.BuyMode(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "x"))
	switch mode {
	case domain.BuyOne, domain.BuyTen, domain.BuyHundred, domain.BuyMax:
		return mode, nil
	case "":
		return domain.BuyOne, nil
	}
	return "", fmt.Errorf(ErrMsgInvalidBuyModeFmt, domain.ErrInvalidBuyMode, s)
}

// ResolveQuantity turns a mode into a concrete quantity for the unit record.
// Max mode resolves against the current food and may return 0.
func ResolveQuantity(rec *domain.UnitRecord, mode domain.BuyMode, food float64) (int, error) {
	switch mode {
	case domain.BuyOne:
		return QuantityOne, nil
	case domain.BuyTen:
		return QuantityTen, nil
	case domain.BuyHundred:
		return QuantityHundred, nil
	case domain.BuyMax:
		return MaxAffordable(rec.Count, rec.Base, rec.Growth, food), nil
	}
	return 0, fmt.Errorf(ErrMsgInvalidBuyModeFmt, domain.ErrInvalidBuyMode, string(mode))
}

// Quote resolves the quantity and price a buy would use right now
func Quote(state *domain.GameState, unit domain.UnitType, mode domain.BuyMode) (domain.Quote, error) {
	rec, err := record(state, unit)
	if err != nil {
		return domain.Quote{}, err
	}
	qty, err := ResolveQuantity(rec, mode, state.Food)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{
		Unit:     unit,
		Mode:     mode,
		Quantity: qty,
		Price:    Cost(rec.Count, qty, rec.Base, rec.Growth),
	}, nil
}

// Buy purchases units for food. The debit and the count increase happen together
// or not at all; a rejected purchase leaves the state untouched.
func Buy(state *domain.GameState, unit domain.UnitType, mode domain.BuyMode) (domain.Purchase, error) {
	quote, err := Quote(state, unit, mode)
	if err != nil {
		return domain.Purchase{}, err
	}
	if quote.Quantity <= 0 {
		return domain.Purchase{}, fmt.Errorf(ErrMsgNothingAffordableFmt, domain.ErrInvalidPurchaseQuantity, unit)
	}
	if state.Food < quote.Price {
		return domain.Purchase{}, fmt.Errorf(ErrMsgCannotAffordUnitsFmt, domain.ErrInsufficientFunds, quote.Quantity, unit, quote.Price, state.Food)
	}

	rec := state.Units[unit]
	state.Food -= quote.Price
	rec.Count += quote.Quantity

	return domain.Purchase{
		Unit:      unit,
		Mode:      mode,
		Quantity:  quote.Quantity,
		Price:     quote.Price,
		NewCount:  rec.Count,
		FoodAfter: state.Food,
	}, nil
}

// NextPrice is the price of the next single unit of a type
func NextPrice(state *domain.GameState, unit domain.UnitType) float64 {
	rec, err := record(state, unit)
	if err != nil {
		return 0
	}
	return Cost(rec.Count, 1, rec.Base, rec.Growth)
}

func record(state *domain.GameState, unit domain.UnitType) (*domain.UnitRecord, error) {
	if !unit.IsValid() {
		return nil, fmt.Errorf(ErrMsgUnknownUnitFmt, domain.ErrUnknownUnit, string(unit))
	}
	rec, ok := state.Units[unit]
	if !ok || rec == nil {
		return nil, fmt.Errorf(ErrMsgUnknownUnitFmt, domain.ErrUnknownUnit, string(unit))
	}
	return rec, nil
}
