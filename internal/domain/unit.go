package domain

// UnitType identifies one of the five animal populations
type UnitType string

const (
	UnitMonkey   UnitType = "monkey"
	UnitZebra    UnitType = "zebra"
	UnitGorilla  UnitType = "gorilla"
	UnitElephant UnitType = "elephant"
	UnitParrot   UnitType = "parrot"
)

// Balance constants shared by every unit type
const (
	// DefaultGrowthFactor is the price ratio between consecutive units
	DefaultGrowthFactor = 1.30

	// EconomyVersionCurrent marks saves whose unit records carry the current balance table
	EconomyVersionCurrent = "econ130"
)

// UnitSpec is the fixed, per-type balance entry of the roster
type UnitSpec struct {
	Type     UnitType `json:"key"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	BaseCost float64  `json:"base"`
	Growth   float64  `json:"m"`
	BaseProd float64  `json:"prod"`
	Special  string   `json:"special"`
}

// UnitRecord is the mutable per-type state stored in a save.
// Base, Growth and Prod mirror the roster and only change through migration.
type UnitRecord struct {
	Count  int     `json:"count"`
	Base   float64 `json:"base"`
	Growth float64 `json:"m"`
	Prod   float64 `json:"prod"`
}

var roster = []UnitSpec{
	{Type: UnitMonkey, Name: "Monkey", Emoji: "🐒", BaseCost: 1, Growth: DefaultGrowthFactor, BaseProd: 1, Special: "Starts your jungle"},
	{Type: UnitZebra, Name: "Zebra", Emoji: "🦓", BaseCost: 5e4, Growth: DefaultGrowthFactor, BaseProd: 10, Special: "Each Zebra: Monkeys +0.5% output"},
	{Type: UnitGorilla, Name: "Gorilla", Emoji: "🦍", BaseCost: 5e7, Growth: DefaultGrowthFactor, BaseProd: 25, Special: "Buffs Monkeys & Zebras +1% each"},
	{Type: UnitElephant, Name: "Elephant", Emoji: "🐘", BaseCost: 5e10, Growth: DefaultGrowthFactor, BaseProd: 120, Special: "Occasional 10x burst; +30min offline cap each"},
	{Type: UnitParrot, Name: "Parrot", Emoji: "🦜", BaseCost: 5e13, Growth: DefaultGrowthFactor, BaseProd: 0.5, Special: "+10% global speed & random caches"},
}

// Roster returns the balance table in display order
func Roster() []UnitSpec {
	out := make([]UnitSpec, len(roster))
	copy(out, roster)
	return out
}

// UnitTypes returns every unit type in roster order
func UnitTypes() []UnitType {
	types := make([]UnitType, len(roster))
	for i, spec := range roster {
		types[i] = spec.Type
	}
	return types
}

// LookupUnit returns the roster entry for a unit type
func LookupUnit(t UnitType) (UnitSpec, bool) {
	for _, spec := range roster {
		if spec.Type == t {
			return spec, true
		}
	}
	return UnitSpec{}, false
}

// IsValid reports whether t is one of the five roster types
func (t UnitType) IsValid() bool {
	_, ok := LookupUnit(t)
	return ok
}

// NewRecord builds a record carrying the roster constants for this spec
func (s UnitSpec) NewRecord(count int) *UnitRecord {
	return &UnitRecord{
		Count:  count,
		Base:   s.BaseCost,
		Growth: s.Growth,
		Prod:   s.BaseProd,
	}
}
