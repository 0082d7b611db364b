package scoring

import "emoji-mem/internal/board"

// TurnHistory holds every evaluated turn of the current round, oldest first.
type TurnHistory struct {
	Entries []TurnRecord
}

// TurnRecord represents a single evaluated pair of reveals.
type TurnRecord struct {
	Turn    int
	First   board.Coord
	Second  board.Coord
	Symbols [2]string
	Matched bool
}

// GetLastN returns up to n most recent turns, newest first.
func (th TurnHistory) GetLastN(n int) []TurnRecord {
	if n > len(th.Entries) {
		n = len(th.Entries)
	}
	out := make([]TurnRecord, 0, n)
	for i := len(th.Entries) - 1; i >= len(th.Entries)-n; i-- {
		out = append(out, th.Entries[i])
	}
	return out
}

// Matches returns only the turns that found a pair.
func (th TurnHistory) Matches() []TurnRecord {
	var out []TurnRecord
	for _, e := range th.Entries {
		if e.Matched {
			out = append(out, e)
		}
	}
	return out
}
