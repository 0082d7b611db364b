package game

import (
	"errors"
	"fmt"
	"time"

	"emoji-mem/internal/board"
	"emoji-mem/internal/state"
)

var ErrConfiguration = errors.New("configuration error")

// HUDHeight is the number of canvas rows reserved above the board.
const HUDHeight = 2

// Config holds the fixed game constants. Sizes are in terminal cells.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	CardWidth    int
	CardHeight   int
	MarginX      int
	MarginY      int
	Rows         int
	Cols         int
	TimeLimit    time.Duration
	RevealDelay  time.Duration
	Pairs        board.PairMapping
}

// DefaultPairs are the farm-to-table emoji pairs: ox and steak, pig and
// bacon, cow and milk, bee and honey, corn and popcorn, hen and egg, tractor
// and apple, farmer and businessman.
var DefaultPairs = board.PairMapping{
	{A: "🐂", B: "🥩"},
	{A: "🐖", B: "🥓"},
	{A: "🐄", B: "🥛"},
	{A: "🐝", B: "🍯"},
	{A: "🌽", B: "🍿"},
	{A: "🐓", B: "🥚"},
	{A: "🚜", B: "🍎"},
	{A: "👩🏽‍🌾", B: "👨🏻‍💼"},
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:  80,
		CanvasHeight: 24,
		CardWidth:    8,
		CardHeight:   3,
		MarginX:      2,
		MarginY:      1,
		Rows:         4,
		Cols:         4,
		TimeLimit:    60 * time.Second,
		RevealDelay:  1000 * time.Millisecond,
		Pairs:        DefaultPairs,
	}
}

// Validate rejects configurations the game cannot start with. Every error
// wraps ErrConfiguration.
func (c Config) Validate() error {
	if c.Rows*c.Cols != 2*len(c.Pairs) || c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %w: %dx%d grid for %d pairs",
			ErrConfiguration, board.ErrGridSize, c.Rows, c.Cols, len(c.Pairs))
	}
	if err := c.Pairs.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	// Two border cells plus a double-width emoji.
	if c.CardWidth < 4 || c.CardHeight < 3 || c.MarginX < 0 || c.MarginY < 0 {
		return fmt.Errorf("%w: card %dx%d with margin %dx%d is too small",
			ErrConfiguration, c.CardWidth, c.CardHeight, c.MarginX, c.MarginY)
	}
	l := c.Layout()
	if l.OriginX < 0 || l.OriginY < HUDHeight {
		return fmt.Errorf("%w: %dx%d board does not fit a %dx%d canvas",
			ErrConfiguration, l.Width(), l.Height(), c.CanvasWidth, c.CanvasHeight)
	}
	if c.TimeLimit < time.Second {
		return fmt.Errorf("%w: time limit %v is under a second", ErrConfiguration, c.TimeLimit)
	}
	if c.RevealDelay < 0 {
		return fmt.Errorf("%w: negative reveal delay %v", ErrConfiguration, c.RevealDelay)
	}
	return nil
}

func (c Config) Layout() board.Layout {
	return board.NewLayout(c.CanvasWidth, c.CanvasHeight, c.CardWidth, c.CardHeight,
		c.MarginX, c.MarginY, c.Rows, c.Cols)
}

func (c Config) GameOptions() state.GameOptions {
	return state.GameOptions{
		Rows:        c.Rows,
		Cols:        c.Cols,
		Pairs:       c.Pairs,
		TimeLimit:   c.TimeLimit,
		RevealDelay: c.RevealDelay,
	}
}
