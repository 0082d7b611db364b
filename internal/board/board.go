package board

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrGridSize    = errors.New("grid size does not fit pair count")
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Coord identifies a card by its grid position.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Card struct {
	Symbol   string
	Revealed bool
	Matched  bool
}

// FaceUp reports whether the card's symbol is visible.
func (c Card) FaceUp() bool {
	return c.Revealed || c.Matched
}

// Board is a rows x cols grid holding exactly two cards per pair.
type Board struct {
	Rows  int
	Cols  int
	cards [][]Card
}

// New shuffles the symbols of pairs with rng and deals them row by row.
// rows*cols must equal 2*len(pairs).
func New(pairs PairMapping, rows, cols int, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrGridSize, rows, cols)
	}
	if rows*cols != 2*len(pairs) {
		return nil, fmt.Errorf("%w: %dx%d grid holds %d cards, %d pairs need %d",
			ErrGridSize, rows, cols, rows*cols, len(pairs), 2*len(pairs))
	}
	if err := pairs.Validate(); err != nil {
		return nil, err
	}

	pool := pairs.Pool()
	// Fisher-Yates, every permutation equally likely.
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	b := &Board{Rows: rows, Cols: cols, cards: make([][]Card, rows)}
	for r := 0; r < rows; r++ {
		b.cards[r] = make([]Card, cols)
		for c := 0; c < cols; c++ {
			b.cards[r][c] = Card{Symbol: pool[r*cols+c]}
		}
	}
	return b, nil
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// CardAt returns the card at c so callers can flip it.
func (b *Board) CardAt(c Coord) (*Card, error) {
	if !b.InBounds(c) {
		return nil, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, c, b.Rows, b.Cols)
	}
	return &b.cards[c.Row][c.Col], nil
}

// Each calls fn for every card in row-major order.
func (b *Board) Each(fn func(Coord, Card)) {
	for r, row := range b.cards {
		for c, card := range row {
			fn(Coord{Row: r, Col: c}, card)
		}
	}
}

// Symbols lists the dealt symbols in row-major order.
func (b *Board) Symbols() []string {
	syms := make([]string, 0, b.Rows*b.Cols)
	b.Each(func(_ Coord, card Card) {
		syms = append(syms, card.Symbol)
	})
	return syms
}

// Find returns the first card, in row-major order, showing symbol.
func (b *Board) Find(symbol string) (Coord, bool) {
	for r, row := range b.cards {
		for c, card := range row {
			if card.Symbol == symbol {
				return Coord{Row: r, Col: c}, true
			}
		}
	}
	return Coord{}, false
}

// Remaining counts the pairs not yet matched.
func (b *Board) Remaining() int {
	n := 0
	b.Each(func(_ Coord, card Card) {
		if !card.Matched {
			n++
		}
	})
	return n / 2
}
