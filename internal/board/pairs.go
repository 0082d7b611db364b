package board

import (
	"errors"
	"fmt"
)

var ErrInvalidPairs = errors.New("invalid pair mapping")

// Pair links two symbols. Matching is symmetric, A and B are interchangeable.
type Pair struct {
	A string
	B string
}

// PairMapping is an ordered list of pairs. A slice keeps the symbol pool in a
// stable order so a seeded shuffle always produces the same board.
type PairMapping []Pair

// Related reports whether a and b form one of the pairs, in either direction.
func (m PairMapping) Related(a, b string) bool {
	for _, p := range m {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return true
		}
	}
	return false
}

// Pool returns every symbol of every pair, two per pair.
func (m PairMapping) Pool() []string {
	pool := make([]string, 0, len(m)*2)
	for _, p := range m {
		pool = append(pool, p.A, p.B)
	}
	return pool
}

// Validate checks that no symbol is empty and no symbol is shared between pairs.
func (m PairMapping) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("%w: no pairs", ErrInvalidPairs)
	}
	owner := make(map[string]int, len(m)*2)
	for i, p := range m {
		if p.A == "" || p.B == "" {
			return fmt.Errorf("%w: pair %d has an empty symbol", ErrInvalidPairs, i)
		}
		for _, sym := range []string{p.A, p.B} {
			if j, ok := owner[sym]; ok && j != i {
				return fmt.Errorf("%w: symbol %q used by pairs %d and %d", ErrInvalidPairs, sym, j, i)
			}
			owner[sym] = i
		}
	}
	return nil
}
