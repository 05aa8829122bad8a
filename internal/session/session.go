package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/save"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/simulation"
)

// Config controls the session loop
type Config struct {
	TickRate     int
	MaxTickDelta time.Duration
	IdleTTL      time.Duration
	MaxSessions  int

	// Clock and Random are replaced in tests
	Clock  func() time.Time
	Random func() float64
}

func (c Config) withDefaults() Config {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.MaxTickDelta <= 0 {
		c.MaxTickDelta = DefaultMaxTickDelta
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = DefaultIdleTTL
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

type command struct {
	fn   func(g *simulation.Game)
	done chan struct{}
}

// Session owns one player's game. A single goroutine runs the tick loop and
// executes every command, so the GameState is never touched concurrently.
// Event handlers run on that goroutine for tick events and must not call back
// into the session.
type Session struct {
	playerID  string
	key       string
	cfg       Config
	store     save.Store
	publisher event.Publisher
	game      *simulation.Game

	cmds      chan command
	quit      chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
	finalOnce sync.Once

	// exportSeq is owned by the loop; each save snapshot takes the next value
	exportSeq uint64

	// writeMu orders store writes so an older snapshot never lands over a newer one
	writeMu    sync.Mutex
	writtenSeq uint64

	// written by the loop before done is closed
	finalSave string
	finalSeq  uint64
	finalErr  error
}

// Open loads the player's save, pays offline catch-up and starts the tick loop.
// A corrupt save is replaced by a fresh game rather than failing the open.
func Open(ctx context.Context, playerID string, store save.Store, publisher event.Publisher, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)
	key := save.Key(playerID)

	now := cfg.Clock()
	state, err := save.Load(ctx, store, key, now)
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptSave) {
			return nil, fmt.Errorf(ErrMsgOpenSessionFailed, playerID, err)
		}
		log.Warn(LogMsgCorruptSaveReset, "error", err)
	}

	opts := []simulation.Option{simulation.WithMaxTickDelta(cfg.MaxTickDelta)}
	if cfg.Random != nil {
		opts = append(opts, simulation.WithRandom(cfg.Random))
	}

	s := &Session{
		playerID:  playerID,
		key:       key,
		cfg:       cfg,
		store:     store,
		publisher: publisher,
		game:      simulation.NewGame(state, now, opts...),
		cmds:      make(chan command),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	if gain := s.game.Resume(now); gain > 0 {
		log.Info(LogMsgOfflineGranted, "amount", gain)
		s.publish(ctx, event.OfflineGranted, event.OfflineGrantedPayloadV1{
			Amount:     gain,
			CapSeconds: simulation.OfflineCapSeconds(s.game.State()),
		})
	}

	go s.run()
	log.Info(LogMsgSessionOpened)
	return s, nil
}

// PlayerID returns the owning player
func (s *Session) PlayerID() string {
	return s.playerID
}

// Done is closed once the loop has exited
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) run() {
	defer close(s.done)

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()

	ctx := logger.WithPlayerID(context.Background(), s.playerID)
	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case cmd := <-s.cmds:
			cmd.fn(s.game)
			close(cmd.done)
		case <-s.quit:
			s.exportSeq++
			s.finalSeq = s.exportSeq
			s.finalSave, s.finalErr = s.game.Export(s.cfg.Clock())
			return
		}
	}
}

func (s *Session) tick(ctx context.Context) {
	res := s.game.Advance(s.cfg.Clock())
	if res.Bonus.Bursts > 0 {
		s.publish(ctx, event.BurstTriggered, event.BurstTriggeredPayloadV1{
			Bursts: res.Bonus.Bursts,
			Amount: res.Bonus.BurstAmount,
		})
	}
	if res.Bonus.CacheFired {
		s.publish(ctx, event.CacheGranted, event.CacheGrantedPayloadV1{
			Parrots: s.game.State().Count(domain.UnitParrot),
			Amount:  res.Bonus.CacheAmount,
		})
	}
}

func (s *Session) publish(ctx context.Context, t event.Type, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event.New(s.playerID, t, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", t, "error", err)
	}
}

// do runs fn on the loop goroutine and waits for it. Once accepted, a command
// always runs to completion before the loop looks at anything else.
func (s *Session) do(ctx context.Context, fn func(g *simulation.Game)) error {
	cmd := command{fn: fn, done: make(chan struct{})}
	select {
	case s.cmds <- cmd:
	case <-s.done:
		return domain.ErrSessionClosed
	case <-s.quit:
		return domain.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-cmd.done
	return nil
}

// Snapshot returns the current read-only projection
func (s *Session) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.do(ctx, func(g *simulation.Game) {
		snap = g.Snapshot()
	})
	return snap, err
}

// Quote prices a purchase without performing it
func (s *Session) Quote(ctx context.Context, unit domain.UnitType, mode domain.BuyMode) (domain.Quote, error) {
	var q domain.Quote
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		q, opErr = g.Quote(unit, mode)
	}); err != nil {
		return domain.Quote{}, err
	}
	return q, opErr
}

// Buy purchases units
func (s *Session) Buy(ctx context.Context, unit domain.UnitType, mode domain.BuyMode) (domain.Purchase, error) {
	var p domain.Purchase
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		p, opErr = g.Buy(unit, mode)
	}); err != nil {
		return domain.Purchase{}, err
	}
	if opErr != nil {
		return domain.Purchase{}, opErr
	}

	s.publish(ctx, event.UnitsPurchased, event.UnitsPurchasedPayloadV1{
		Unit:     string(p.Unit),
		Mode:     string(p.Mode),
		Quantity: p.Quantity,
		Price:    p.Price,
		NewCount: p.NewCount,
	})
	return p, nil
}

// PurchaseUpgrade buys an upgrade for the current run
func (s *Session) PurchaseUpgrade(ctx context.Context, id domain.UpgradeID) (domain.UpgradePurchase, error) {
	var p domain.UpgradePurchase
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		p, opErr = g.PurchaseUpgrade(id)
	}); err != nil {
		return domain.UpgradePurchase{}, err
	}
	if opErr != nil {
		return domain.UpgradePurchase{}, opErr
	}

	s.publish(ctx, event.UpgradePurchased, event.UpgradePurchasedPayloadV1{UpgradeID: string(p.ID), Cost: p.Cost})
	return p, nil
}

// Prestige performs the soft reset
func (s *Session) Prestige(ctx context.Context) (int, error) {
	var gain, relics int
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		gain, opErr = g.Prestige(s.cfg.Clock())
		relics = g.State().Relics
	}); err != nil {
		return 0, err
	}
	if opErr != nil {
		return 0, opErr
	}

	s.publish(ctx, event.PrestigeCompleted, event.PrestigeCompletedPayloadV1{Gain: gain, Relics: relics})
	return gain, nil
}

// Wipe discards all progress and starts over
func (s *Session) Wipe(ctx context.Context) error {
	if err := s.do(ctx, func(g *simulation.Game) {
		g.Wipe(s.cfg.Clock())
	}); err != nil {
		return err
	}
	s.publish(ctx, event.GameWiped, nil)
	return nil
}

// Export returns the current save string without writing it
func (s *Session) Export(ctx context.Context) (string, error) {
	var raw string
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		raw, opErr = g.Export(s.cfg.Clock())
	}); err != nil {
		return "", err
	}
	return raw, opErr
}

// Import replaces the game with a save string and returns the offline catch-up it paid
func (s *Session) Import(ctx context.Context, raw string) (float64, error) {
	var gain float64
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		gain, opErr = g.Import(raw, s.cfg.Clock())
	}); err != nil {
		return 0, err
	}
	if opErr != nil {
		return 0, opErr
	}

	s.publish(ctx, event.SaveImported, event.SaveImportedPayloadV1{OfflineGain: gain})
	return gain, nil
}

// Save takes an atomic snapshot on the loop and writes it to the store from the caller's goroutine
func (s *Session) Save(ctx context.Context, reason string) error {
	var raw string
	var seq uint64
	var opErr error
	if err := s.do(ctx, func(g *simulation.Game) {
		s.exportSeq++
		seq = s.exportSeq
		raw, opErr = g.Export(s.cfg.Clock())
	}); err != nil {
		return err
	}
	if opErr != nil {
		return opErr
	}
	return s.write(ctx, raw, seq, reason)
}

// write stores a snapshot unless a newer one has already been written
func (s *Session) write(ctx context.Context, raw string, seq uint64, reason string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	log := logger.FromContext(logger.WithPlayerID(ctx, s.playerID))
	if seq <= s.writtenSeq {
		log.Debug(LogMsgStaleSaveSkipped, "reason", reason)
		return nil
	}
	if err := s.store.Set(ctx, s.key, raw); err != nil {
		log.Error(LogMsgSaveFailed, "reason", reason, "error", err)
		s.publish(ctx, event.SaveFailed, event.GameSavedPayloadV1{Key: s.key, Reason: reason, Error: err.Error()})
		return fmt.Errorf(ErrMsgSaveFailedFmt, s.key, err)
	}
	s.writtenSeq = seq
	log.Debug(LogMsgSaved, "reason", reason, "bytes", len(raw))
	s.publish(ctx, event.GameSaved, event.GameSavedPayloadV1{Key: s.key, Bytes: len(raw), Reason: reason})
	return nil
}

// Stop ends the loop and writes a final save. Later calls return nil once the
// final save has been attempted.
func (s *Session) Stop(ctx context.Context, reason string) error {
	s.stopOnce.Do(func() {
		close(s.quit)
	})

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	var err error
	s.finalOnce.Do(func() {
		logger.FromContext(logger.WithPlayerID(ctx, s.playerID)).Info(LogMsgSessionStopped, "reason", reason)
		if s.finalErr != nil {
			err = fmt.Errorf(ErrMsgSaveFailedFmt, s.key, s.finalErr)
			return
		}
		err = s.write(ctx, s.finalSave, s.finalSeq, reason)
	})
	return err
}
