package game

import (
	"errors"
	"math/rand"
	"time"

	"emoji-mem/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session owns everything mutable about one play-through: the game, its
// random source and its logger.
type Session struct {
	ID          uuid.UUID
	Config      Config
	Seed        int64
	CurrentGame *Game

	log zerolog.Logger
}

// NewSession validates cfg and sets up a game waiting for the start key.
func NewSession(cfg Config, seed int64, logger zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:     uuid.New(),
		Config: cfg,
		Seed:   seed,
	}
	s.log = logger.With().Str("session", s.ID.String()).Logger()
	s.CurrentGame = NewGame(cfg, rand.New(rand.NewSource(seed)))

	s.log.Info().
		Int64("seed", seed).
		Int("pairs", len(cfg.Pairs)).
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Dur("time_limit", cfg.TimeLimit).
		Msg("session created")

	return s, nil
}

// HandleKeyPress routes a key to the current game.
func (s *Session) HandleKeyPress(ch string, now time.Time) {
	g := s.CurrentGame
	wasWaiting := g.State.IsWaiting()

	if err := g.HandleKeyPress(ch, now); err != nil {
		if errors.Is(err, state.ErrInvalidTransition) {
			s.log.Debug().Err(err).Str("key", ch).Msg("key ignored")
			return
		}
		s.log.Error().Err(err).Str("key", ch).Msg("start failed")
		return
	}

	if wasWaiting && g.State.IsPlaying() {
		s.log.Info().Strs("board", g.State.Board.Symbols()).Msg("round started")
	}
}

// HandleClick routes a pointer press at canvas cell (x, y) to the current game.
func (s *Session) HandleClick(x, y int, now time.Time) {
	c, ok := s.CurrentGame.HandleClick(x, y, now)
	if !ok {
		return
	}
	s.log.Debug().
		Int("row", c.Row).
		Int("col", c.Col).
		Int("selected", len(s.CurrentGame.State.Selection)).
		Msg("card revealed")
}

// Update ticks the current game and logs what changed.
func (s *Session) Update(now time.Time) {
	g := s.CurrentGame
	wasPlaying := g.State.IsPlaying()

	if ev := g.HandleTick(now); ev != nil {
		s.log.Debug().
			Str("first", ev.First.String()).
			Str("second", ev.Second.String()).
			Strs("symbols", ev.Symbols[:]).
			Bool("matched", ev.Matched).
			Int("matched_pairs", g.State.MatchedPairs).
			Msg("turn evaluated")
	}

	if wasPlaying && g.State.IsOver() {
		s.log.Info().
			Str("outcome", g.State.Outcome.String()).
			Int("matched_pairs", g.State.MatchedPairs).
			Int("turns", g.State.Score.Turns).
			Int("misses", g.State.Score.Misses).
			Int("remaining", g.State.Remaining(now)).
			Msg("game over")
	}
}

func (s *Session) IsFinished() bool {
	return s.CurrentGame.State.IsOver()
}

func (s *Session) Outcome() state.Outcome {
	return s.CurrentGame.State.Outcome
}
