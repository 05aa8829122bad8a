package save

import (
	"context"
	"fmt"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
)

// Load reads, migrates and repairs the game stored under key.
//
// A missing key yields a fresh state. A corrupt save also yields a fresh state,
// together with an error wrapping domain.ErrCorruptSave so the caller can log it.
// A store failure returns a nil state; the caller must not overwrite the slot.
func Load(ctx context.Context, store Store, key string, now time.Time) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgStoreGetFailed, key, err)
	}
	if !ok {
		log.Debug(LogMsgNoSaveFound, "key", key)
		return domain.NewGameState(now), nil
	}

	state, err := Deserialize(raw)
	if err != nil {
		log.Warn(LogMsgCorruptSave, "key", key, "error", err)
		return domain.NewGameState(now), err
	}

	if Migrate(state) {
		log.Info(LogMsgSaveMigrated, "key", key, "version", state.EconomyVersion)
	}
	if Repair(state) {
		log.Info(LogMsgSaveRepaired, "key", key)
	}

	log.Debug(LogMsgSaveLoaded, "key", key, "food", state.Food, "relics", state.Relics)
	return state, nil
}

// Write serializes state and stores it under key, stamping LastSaveAt first
func Write(ctx context.Context, store Store, key string, state *domain.GameState, now time.Time) (string, error) {
	state.LastSaveAt = now.UnixMilli()
	raw, err := Serialize(state)
	if err != nil {
		return "", err
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return "", fmt.Errorf(ErrMsgStoreSetFailed, key, err)
	}
	return raw, nil
}
