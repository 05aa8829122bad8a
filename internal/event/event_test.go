package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(BurstTriggered, func(ctx context.Context, e Event) error {
		assert.Equal(t, BurstTriggered, e.Type)
		assert.Equal(t, "p1", e.PlayerID())
		payload, err := DecodePayload[BurstTriggeredPayloadV1](e.Payload)
		require.NoError(t, err)
		assert.Equal(t, 2, payload.Bursts)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), New("p1", BurstTriggered, BurstTriggeredPayloadV1{Bursts: 2, Amount: 2400}))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(GameSaved, handler)
	bus.Subscribe(GameSaved, handler)

	require.NoError(t, bus.Publish(context.Background(), New("p1", GameSaved, GameSavedPayloadV1{})))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), New("p1", GameWiped, nil)))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(GameWiped, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(GameWiped, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), New("p1", GameWiped, nil))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemoryBus_SubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]bool{}
	bus.SubscribeAll(func(ctx context.Context, e Event) error {
		seen[e.Type] = true
		return nil
	})

	for _, typ := range AllGameTypes() {
		require.NoError(t, bus.Publish(context.Background(), New("p1", typ, nil)))
	}
	assert.Len(t, seen, len(AllGameTypes()))
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"gain": 3, "relics": 10}
	payload, err := DecodePayload[PrestigeCompletedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, PrestigeCompletedPayloadV1{Gain: 3, Relics: 10}, payload)
}
