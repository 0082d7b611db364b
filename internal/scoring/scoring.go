package scoring

import "emoji-mem/internal/board"

// Scoring tallies the turns of one round. It lives only as long as the round.
type Scoring struct {
	// public
	Turns      int
	Misses     int
	Streak     int
	BestStreak int
	// private
	history TurnHistory
}

// InitScoring returns an empty tally for a new round.
func InitScoring() *Scoring {
	return &Scoring{}
}

// ScoreEvent records an evaluated turn.
func (s *Scoring) ScoreEvent(first, second board.Coord, symbols [2]string, matched bool) TurnRecord {
	s.Turns++
	if matched {
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Misses++
		s.Streak = 0
	}

	rec := TurnRecord{
		Turn:    s.Turns,
		First:   first,
		Second:  second,
		Symbols: symbols,
		Matched: matched,
	}
	s.history.Entries = append(s.history.Entries, rec)
	return rec
}

// Accuracy is the share of turns that found a pair, 0 before the first turn.
func (s *Scoring) Accuracy() float64 {
	if s.Turns == 0 {
		return 0
	}
	return float64(s.Turns-s.Misses) / float64(s.Turns)
}

// Accessor methods for the turn history, delegating to the history object.
func (s *Scoring) History() TurnHistory {
	return s.history
}

func (s *Scoring) GetLastN(n int) []TurnRecord {
	return s.history.GetLastN(n)
}
