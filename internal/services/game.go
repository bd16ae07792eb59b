package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"guess-the-number/internal/game"
	"guess-the-number/internal/models"
)

// GameService runs controller actions against stored player sessions.
// Every action loads the session, applies one controller call and saves
// the new snapshot while holding the service lock.
type GameService struct {
	store       SessionStore
	broadcaster Broadcaster
	source      game.TargetSource

	mu sync.Mutex
}

type ServiceOption func(*GameService)

// WithTargetSource fixes how new rounds draw their target.
func WithTargetSource(src game.TargetSource) ServiceOption {
	return func(s *GameService) {
		s.source = src
	}
}

func NewGameService(store SessionStore, opts ...ServiceOption) *GameService {
	s := &GameService{
		store:       store,
		broadcaster: nopBroadcaster{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b == nil {
		b = nopBroadcaster{}
	}
	s.broadcaster = b
}

func (s *GameService) controllerOptions(extra ...game.Option) []game.Option {
	opts := make([]game.Option, 0, len(extra)+1)
	if s.source != nil {
		opts = append(opts, game.WithTargetSource(s.source))
	}
	return append(opts, extra...)
}

// CreateSession registers a new player with a fresh Easy controller.
func (s *GameService) CreateSession(ctx context.Context) (*models.PlayerSession, error) {
	now := time.Now()
	session := &models.PlayerSession{
		ID:        models.GenerateSessionID(),
		State:     game.NewController(s.controllerOptions()...).Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	log.Debug().Str("session_id", session.ID).Msg("session created")
	return session, nil
}

func (s *GameService) Session(ctx context.Context, id string) (*models.PlayerSession, error) {
	return s.store.Get(ctx, id)
}

func (s *GameService) Status(ctx context.Context, id string) (models.SessionStatus, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return models.SessionStatus{}, err
	}
	return session.Status(), nil
}

// Start begins a round. A non-nil difficulty is applied first, which is
// only possible while no round is running.
func (s *GameService) Start(ctx context.Context, id string, difficulty *game.Difficulty) (game.Result, *models.PlayerSession, error) {
	return s.apply(ctx, id, func(c *game.Controller) (game.Result, error) {
		if difficulty != nil && c.Status() == game.StatusNotStarted && c.Difficulty() != *difficulty {
			if _, err := c.ToggleDifficulty(); err != nil {
				return game.Result{}, err
			}
		}
		return c.Start()
	})
}

func (s *GameService) Guess(ctx context.Context, id, raw string) (game.Result, *models.PlayerSession, error) {
	return s.apply(ctx, id, func(c *game.Controller) (game.Result, error) {
		return c.SubmitGuess(raw)
	})
}

func (s *GameService) ToggleDifficulty(ctx context.Context, id string) (game.Result, *models.PlayerSession, error) {
	return s.apply(ctx, id, func(c *game.Controller) (game.Result, error) {
		if _, err := c.ToggleDifficulty(); err != nil {
			return game.Result{}, err
		}
		return c.LastResult(), nil
	})
}

// Continue acknowledges a finished round.
func (s *GameService) Continue(ctx context.Context, id string) (game.Result, *models.PlayerSession, error) {
	return s.apply(ctx, id, func(c *game.Controller) (game.Result, error) {
		if err := c.AcknowledgeRoundEnd(); err != nil {
			return game.Result{}, err
		}
		return c.LastResult(), nil
	})
}

// NewGame discards whatever round the session holds and starts a fresh one.
// Unknown sessions are created under the given id. A nil difficulty keeps
// the session's current one.
func (s *GameService) NewGame(ctx context.Context, id string, difficulty *game.Difficulty) (game.Result, *models.PlayerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	session, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		session = &models.PlayerSession{ID: id, CreatedAt: now}
	case err != nil:
		return game.Result{}, nil, err
	}

	d := session.State.Difficulty
	if difficulty != nil {
		d = *difficulty
	}

	c := game.NewController(s.controllerOptions(game.WithDifficulty(d))...)
	res, err := c.Start()
	if err != nil {
		return game.Result{}, nil, err
	}

	return s.commit(ctx, session, c, res, now)
}

// End deletes the session and reports whether it existed.
func (s *GameService) End(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.broadcaster.BroadcastSessionEnded(id)
	}
	return deleted, nil
}

func (s *GameService) ListSessions(ctx context.Context) ([]models.SessionStatus, error) {
	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.SessionStatus, 0, len(sessions))
	for _, session := range sessions {
		statuses = append(statuses, session.Status())
	}
	return statuses, nil
}

func (s *GameService) CleanupStaleSessions(ctx context.Context, maxAge time.Duration) {
	removed, err := s.store.CleanupStale(ctx, maxAge)
	if err != nil {
		log.Error().Err(err).Msg("failed to clean up stale sessions")
		return
	}
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("cleaned up stale sessions")
	}
}

func (s *GameService) Help() string {
	return game.HelpText
}

func (s *GameService) apply(ctx context.Context, id string, action func(*game.Controller) (game.Result, error)) (game.Result, *models.PlayerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return game.Result{}, nil, err
	}

	c, err := game.Restore(session.State, s.controllerOptions()...)
	if err != nil {
		return game.Result{}, nil, fmt.Errorf("session %s: %w", id, err)
	}

	res, err := action(c)
	if err != nil {
		return game.Result{}, session, err
	}

	return s.commit(ctx, session, c, res, time.Now())
}

func (s *GameService) commit(ctx context.Context, session *models.PlayerSession, c *game.Controller, res game.Result, now time.Time) (game.Result, *models.PlayerSession, error) {
	session.State = c.Snapshot()
	session.UpdatedAt = now

	if err := s.store.Save(ctx, session); err != nil {
		return game.Result{}, nil, err
	}

	if res.Status.Over() {
		log.Debug().
			Str("session_id", session.ID).
			Str("outcome", string(res.Outcome)).
			Int("guesses", len(session.State.Guesses)).
			Msg("round finished")
	}

	s.broadcaster.BroadcastRoundUpdate(session.ID, res, session.Status())
	return res, session, nil
}
