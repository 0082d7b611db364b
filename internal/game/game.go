package game

import (
	"math/rand"
	"time"

	"emoji-mem/internal/board"
	"emoji-mem/internal/state"
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State  *state.State
	Layout board.Layout
}

// NewGame initializes a new game instance waiting for the start key.
func NewGame(cfg Config, rng *rand.Rand) *Game {
	return &Game{
		State:  state.NewState(cfg.GameOptions(), rng),
		Layout: cfg.Layout(),
	}
}

// HandleTick advances the clock and any pending evaluation.
func (g *Game) HandleTick(now time.Time) *state.Evaluation {
	return g.State.Tick(now)
}

// HandleKeyPress starts the round when the start key is pressed. Other keys
// are ignored; the returned error only explains why nothing happened.
func (g *Game) HandleKeyPress(ch string, now time.Time) error {
	if !state.IsStartRequested(ch) {
		return nil
	}
	return g.State.Start(now)
}

// HandleClick reveals the card under the canvas point (x, y). It reports the
// card and whether the reveal was accepted.
func (g *Game) HandleClick(x, y int, now time.Time) (board.Coord, bool) {
	if !g.State.IsPlaying() {
		return board.Coord{}, false
	}
	c, ok := g.Layout.Locate(x, y)
	if !ok {
		return board.Coord{}, false
	}
	return c, g.State.Reveal(c, now)
}
