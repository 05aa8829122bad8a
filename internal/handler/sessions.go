package handler

import (
	"context"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
)

// GameSession is the per-player command surface the HTTP layer drives
type GameSession interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Quote(ctx context.Context, unit domain.UnitType, mode domain.BuyMode) (domain.Quote, error)
	Buy(ctx context.Context, unit domain.UnitType, mode domain.BuyMode) (domain.Purchase, error)
	PurchaseUpgrade(ctx context.Context, id domain.UpgradeID) (domain.UpgradePurchase, error)
	Prestige(ctx context.Context) (int, error)
	Wipe(ctx context.Context) error
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, raw string) (float64, error)
	Save(ctx context.Context, reason string) error
}

// SessionProvider opens or finds the live session for a player
type SessionProvider interface {
	Session(ctx context.Context, playerID string) (GameSession, error)
}

type managerSessions struct {
	manager *session.Manager
}

// NewSessionProvider exposes a session manager to the handlers
func NewSessionProvider(manager *session.Manager) SessionProvider {
	return managerSessions{manager: manager}
}

func (m managerSessions) Session(ctx context.Context, playerID string) (GameSession, error) {
	s, err := m.manager.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SnapshotFor adapts a provider to the SSE snapshot source
func SnapshotFor(p SessionProvider) func(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return func(ctx context.Context, playerID string) (domain.Snapshot, error) {
		s, err := p.Session(ctx, playerID)
		if err != nil {
			return domain.Snapshot{}, err
		}
		return s.Snapshot(ctx)
	}
}
