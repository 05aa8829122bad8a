package domain

// BuyMode selects how many units a purchase resolves to
type BuyMode string

const (
	BuyOne     BuyMode = "1"
	BuyTen     BuyMode = "10"
	BuyHundred BuyMode = "100"
	BuyMax     BuyMode = "max"
)

// Quote is the resolved quantity and price for a buy mode
type Quote struct {
	Unit     UnitType `json:"unit"`
	Mode     BuyMode  `json:"mode"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
}

// Purchase is the outcome of a successful unit purchase
type Purchase struct {
	Unit      UnitType `json:"unit"`
	Mode      BuyMode  `json:"mode"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	NewCount  int      `json:"new_count"`
	FoodAfter float64  `json:"food_after"`
}

// UpgradePurchase is the outcome of a successful upgrade purchase
type UpgradePurchase struct {
	ID        UpgradeID `json:"id"`
	Cost      float64   `json:"cost"`
	FoodAfter float64   `json:"food_after"`
}
