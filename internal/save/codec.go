package save

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/validation"
)

//go:embed save.schema.json
var schemaJSON []byte

var schemas = mustSchemas()

func mustSchemas() validation.SchemaValidator {
	v := validation.NewSchemaValidator()
	if err := v.Register(schemaName, schemaJSON); err != nil {
		panic(fmt.Sprintf(ErrMsgSchemaRegisterFatal, err))
	}
	return v
}

// document is the on-disk shape. Older saves mark the current balance table
// with a boolean econ130 flag instead of economyVersion.
type document struct {
	*domain.GameState
	LegacyEcon130 bool `json:"econ130,omitempty"`
}

// Serialize encodes the state as the save string. Map keys are sorted by
// encoding/json, so equal states always produce identical bytes. Amounts that
// have overflowed to infinity are written as the largest finite float64 and
// NaN as 0, so a runaway economy still saves.
func Serialize(state *domain.GameState) (string, error) {
	if !isFinite(state) {
		state = clampFinite(state.Clone())
	}
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf(ErrMsgMarshalFailed, err)
	}
	return string(data), nil
}

// Deserialize decodes a save string. Malformed JSON and structurally invalid
// saves both wrap domain.ErrCorruptSave. The result is not migrated or repaired.
func Deserialize(raw string) (*domain.GameState, error) {
	if err := schemas.ValidateBytes([]byte(raw), schemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, domain.ErrCorruptSave, err)
	}

	doc := document{GameState: &domain.GameState{}}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailedFmt, domain.ErrCorruptSave, err)
	}

	state := doc.GameState
	if doc.LegacyEcon130 && state.EconomyVersion == "" {
		state.EconomyVersion = domain.EconomyVersionCurrent
	}
	return state, nil
}

// Key returns the store key for a player's game
func Key(playerID string) string {
	if playerID == "" {
		return DefaultKey
	}
	return DefaultKey + keySeparator + playerID
}

func isFinite(state *domain.GameState) bool {
	vals := []float64{state.Food, state.TotalProduced, state.SpeedMult, state.ParrotCacheTimerSec}
	for _, rec := range state.Units {
		if rec != nil {
			vals = append(vals, rec.Base, rec.Growth, rec.Prod)
		}
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampFinite(state *domain.GameState) *domain.GameState {
	state.Food = finite(state.Food)
	state.TotalProduced = finite(state.TotalProduced)
	state.SpeedMult = finite(state.SpeedMult)
	state.ParrotCacheTimerSec = finite(state.ParrotCacheTimerSec)
	for _, rec := range state.Units {
		if rec == nil {
			continue
		}
		rec.Base = finite(rec.Base)
		rec.Growth = finite(rec.Growth)
		rec.Prod = finite(rec.Prod)
	}
	return state
}

func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return 0
	}
	return v
}
