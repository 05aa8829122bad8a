package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// PlayerID returns the player the event belongs to, or "" for global events
func (e Event) PlayerID() string {
	id, _ := e.GetMetadataValue(MetadataKeyPlayerID).(string)
	return id
}

// Game event types
const (
	UnitsPurchased    Type = domain.EventTypeUnitsPurchased
	UpgradePurchased  Type = domain.EventTypeUpgradePurchased
	BurstTriggered    Type = domain.EventTypeBurstTriggered
	CacheGranted      Type = domain.EventTypeCacheGranted
	PrestigeCompleted Type = domain.EventTypePrestigeCompleted
	OfflineGranted    Type = domain.EventTypeOfflineGranted
	GameSaved         Type = domain.EventTypeGameSaved
	SaveFailed        Type = domain.EventTypeSaveFailed
	GameWiped         Type = domain.EventTypeGameWiped
	SaveImported      Type = domain.EventTypeSaveImported
)

// AllGameTypes lists every event type a session publishes
func AllGameTypes() []Type {
	return []Type{
		UnitsPurchased, UpgradePurchased, BurstTriggered, CacheGranted, PrestigeCompleted,
		OfflineGranted, GameSaved, SaveFailed, GameWiped, SaveImported,
	}
}

// Typed event payloads for type safety

// UnitsPurchasedPayloadV1 is the typed payload for unit purchase events
type UnitsPurchasedPayloadV1 struct {
	Unit     string  `json:"unit"`
	Mode     string  `json:"mode"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	NewCount int     `json:"new_count"`
}

// UpgradePurchasedPayloadV1 is the typed payload for upgrade purchase events
type UpgradePurchasedPayloadV1 struct {
	UpgradeID string  `json:"upgrade_id"`
	Cost      float64 `json:"cost"`
}

// BurstTriggeredPayloadV1 is the typed payload for elephant burst events
type BurstTriggeredPayloadV1 struct {
	Bursts int     `json:"bursts"`
	Amount float64 `json:"amount"`
}

// CacheGrantedPayloadV1 is the typed payload for parrot cache events
type CacheGrantedPayloadV1 struct {
	Parrots int     `json:"parrots"`
	Amount  float64 `json:"amount"`
}

// PrestigeCompletedPayloadV1 is the typed payload for prestige events
type PrestigeCompletedPayloadV1 struct {
	Gain   int `json:"gain"`
	Relics int `json:"relics"`
}

// OfflineGrantedPayloadV1 is the typed payload for the one-time offline notice
type OfflineGrantedPayloadV1 struct {
	Amount     float64 `json:"amount"`
	CapSeconds int64   `json:"cap_seconds"`
}

// GameSavedPayloadV1 is the typed payload for save events, successful or failed
type GameSavedPayloadV1 struct {
	Key    string `json:"key"`
	Bytes  int    `json:"bytes"`
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

// SaveImportedPayloadV1 is the typed payload for import events
type SaveImportedPayloadV1 struct {
	OfflineGain float64 `json:"offline_gain"`
}

// New builds a player-scoped event
func New(playerID string, t Type, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyPlayerID: playerID},
	}
}

// DecodePayload returns the payload as T. In-process payloads are already T;
// anything else goes through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the write side of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type synchronously.
// Handler errors are collected; one failing handler does not stop the rest.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every game event type
func (b *MemoryBus) SubscribeAll(handler Handler) {
	for _, t := range AllGameTypes() {
		b.Subscribe(t, handler)
	}
}
