package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSession) Quote(ctx context.Context, unit domain.UnitType, mode domain.BuyMode) (domain.Quote, error) {
	args := m.Called(ctx, unit, mode)
	return args.Get(0).(domain.Quote), args.Error(1)
}

func (m *MockSession) Buy(ctx context.Context, unit domain.UnitType, mode domain.BuyMode) (domain.Purchase, error) {
	args := m.Called(ctx, unit, mode)
	return args.Get(0).(domain.Purchase), args.Error(1)
}

func (m *MockSession) PurchaseUpgrade(ctx context.Context, id domain.UpgradeID) (domain.UpgradePurchase, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UpgradePurchase), args.Error(1)
}

func (m *MockSession) Prestige(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSession) Wipe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Export(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSession) Import(ctx context.Context, raw string) (float64, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockSession) Save(ctx context.Context, reason string) error {
	return m.Called(ctx, reason).Error(0)
}

// MockSessions hands out a single MockSession, or an error
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Session(ctx context.Context, playerID string) (GameSession, error) {
	args := m.Called(ctx, playerID)
	if s := args.Get(0); s != nil {
		return s.(GameSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func newMockSessions(s *MockSession) *MockSessions {
	p := &MockSessions{}
	p.On("Session", mock.Anything, mock.Anything).Return(s, nil)
	return p
}
