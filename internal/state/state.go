package state

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"emoji-mem/internal/board"
	"emoji-mem/internal/scoring"

	"github.com/looplab/fsm"
)

const (
	PhaseWaiting  = "waitingToStart"
	PhasePlaying  = "playing"
	PhaseGameOver = "gameOver"
)

var ErrInvalidTransition = errors.New("invalid state transition")

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "none"
	}
}

type GameOptions struct {
	Rows        int
	Cols        int
	Pairs       board.PairMapping
	TimeLimit   time.Duration // Round length
	RevealDelay time.Duration // How long two revealed cards stay up before evaluation
}

type State struct {
	Board        *board.Board
	Selection    []board.Coord // Cards revealed this turn, at most two
	MatchedPairs int
	Clock        Clock
	EvalPending  bool      // A full selection is waiting for evaluation
	EvalDue      time.Time // When the pending evaluation runs
	Outcome      Outcome
	Message      string
	EndedAt      time.Time
	Score        *scoring.Scoring
	FSM          *fsm.FSM
	Options      GameOptions

	rng *rand.Rand
}

// Evaluation describes one resolved turn.
type Evaluation struct {
	First   board.Coord
	Second  board.Coord
	Symbols [2]string
	Matched bool
}

func NewState(opts GameOptions, rng *rand.Rand) *State {
	s := &State{
		Clock:   Clock{Limit: opts.TimeLimit},
		Score:   scoring.InitScoring(),
		Options: opts,
		rng:     rng,
	}

	s.FSM = fsm.NewFSM(
		PhaseWaiting,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{PhaseWaiting}, Dst: PhasePlaying},
		{Name: "win", Src: []string{PhasePlaying}, Dst: PhaseGameOver},
		{Name: "timeout", Src: []string{PhasePlaying}, Dst: PhaseGameOver},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_start": func(ctx context.Context, e *fsm.Event) {
			b, err := board.New(s.Options.Pairs, s.Options.Rows, s.Options.Cols, s.rng)
			if err != nil {
				e.Cancel(err)
				return
			}
			s.Board = b
		},
		"enter_" + PhasePlaying: func(ctx context.Context, e *fsm.Event) {
			s.MatchedPairs = 0
			s.Selection = nil
			s.EvalPending = false
			s.EvalDue = time.Time{}
			s.Outcome = OutcomeNone
			s.Message = ""
			s.EndedAt = time.Time{}
			s.Score = scoring.InitScoring()
			s.Clock.Start(eventTime(e))
		},
		"enter_" + PhaseGameOver: func(ctx context.Context, e *fsm.Event) {
			// Drop the pending evaluation so nothing flips after the round ends.
			s.EvalPending = false
			s.EvalDue = time.Time{}
			s.EndedAt = eventTime(e)

			switch e.Event {
			case "win":
				s.Outcome = OutcomeWon
				s.Message = "Congratulations! You found every pair!"
			case "timeout":
				s.Outcome = OutcomeTimedOut
				s.Message = "Time's up!"
			}
		},
	}
}

func eventTime(e *fsm.Event) time.Time {
	if len(e.Args) > 0 {
		if t, ok := e.Args[0].(time.Time); ok {
			return t
		}
	}
	return time.Now()
}

// fire runs an fsm event and normalises its errors.
func (s *State) fire(event string, now time.Time) error {
	err := s.FSM.Event(context.Background(), event, now)
	if err == nil {
		return nil
	}

	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s in %s", ErrInvalidTransition, invalid.Event, invalid.State)
	}
	var canceled fsm.CanceledError
	if errors.As(err, &canceled) && canceled.Err != nil {
		return fmt.Errorf("%s canceled: %w", event, canceled.Err)
	}
	return err
}

// Start deals a fresh board and starts the clock. It only succeeds while
// waiting to start.
func (s *State) Start(now time.Time) error {
	return s.fire("start", now)
}

// Reveal flips the card at c face up. It reports false, leaving the state
// untouched, when the round is not running, two cards are already waiting,
// or the card is already face up.
func (s *State) Reveal(c board.Coord, now time.Time) bool {
	if !s.IsPlaying() || len(s.Selection) >= 2 || s.Clock.Expired(now) {
		return false
	}
	card, err := s.Board.CardAt(c)
	if err != nil || card.FaceUp() {
		return false
	}

	card.Revealed = true
	s.Selection = append(s.Selection, c)
	if len(s.Selection) == 2 {
		s.EvalPending = true
		s.EvalDue = now.Add(s.Options.RevealDelay)
	}
	return true
}

// Evaluate resolves a full selection: a pair is kept face up, anything else
// is turned back down. The selection is cleared either way.
func (s *State) Evaluate() (*Evaluation, bool) {
	if !s.IsPlaying() || len(s.Selection) != 2 {
		return nil, false
	}

	first, second := s.Selection[0], s.Selection[1]
	a, errA := s.Board.CardAt(first)
	b, errB := s.Board.CardAt(second)
	if errA != nil || errB != nil {
		s.clearSelection()
		return nil, false
	}

	ev := &Evaluation{
		First:   first,
		Second:  second,
		Symbols: [2]string{a.Symbol, b.Symbol},
		Matched: s.Options.Pairs.Related(a.Symbol, b.Symbol),
	}
	if ev.Matched {
		a.Matched = true
		b.Matched = true
		s.MatchedPairs++
	} else {
		a.Revealed = false
		b.Revealed = false
	}
	s.clearSelection()
	s.Score.ScoreEvent(first, second, ev.Symbols, ev.Matched)

	return ev, true
}

func (s *State) clearSelection() {
	s.Selection = nil
	s.EvalPending = false
	s.EvalDue = time.Time{}
}

// Tick advances the round to now. A due evaluation runs first, unless it was
// scheduled past the deadline. Then the win and timeout checks run against the
// same instant, win first. The evaluation that ran, if any, is returned.
func (s *State) Tick(now time.Time) *Evaluation {
	if !s.IsPlaying() {
		return nil
	}

	var ev *Evaluation
	if s.EvalPending && !now.Before(s.EvalDue) && !s.EvalDue.After(s.Clock.Deadline()) {
		ev, _ = s.Evaluate()
	}

	switch {
	case s.Won():
		_ = s.fire("win", now)
	case s.Clock.Expired(now):
		_ = s.fire("timeout", now)
	}

	return ev
}

// Remaining reports the seconds left, frozen once the round is over and full
// before it starts.
func (s *State) Remaining(now time.Time) int {
	switch s.Phase() {
	case PhaseWaiting:
		return int(s.Options.TimeLimit / time.Second)
	case PhaseGameOver:
		return s.Clock.Remaining(s.EndedAt)
	}
	return s.Clock.Remaining(now)
}
