package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"emoji-mem/internal/state"

	"github.com/rs/zerolog"
)

func TestNewSession_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 3

	sess, err := NewSession(cfg, 1, zerolog.Nop())
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Expected ErrConfiguration, got %v", err)
	}
	if sess != nil {
		t.Error("No session should be returned for a bad config")
	}
}

func TestSession_SameSeedSameBoard(t *testing.T) {
	a, _ := NewSession(DefaultConfig(), 99, zerolog.Nop())
	b, _ := NewSession(DefaultConfig(), 99, zerolog.Nop())
	a.HandleKeyPress(" ", start)
	b.HandleKeyPress(" ", start)

	if strings.Join(a.CurrentGame.State.Board.Symbols(), "") != strings.Join(b.CurrentGame.State.Board.Symbols(), "") {
		t.Error("Sessions with the same seed should deal the same board")
	}
	if a.ID == b.ID {
		t.Error("Each session should get its own id")
	}
}

func TestSession_PlayThroughLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	sess, err := NewSession(DefaultConfig(), 5, logger)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if sess.IsFinished() {
		t.Fatal("New session should not be finished")
	}

	sess.HandleKeyPress(" ", start)
	sess.HandleKeyPress(" ", start) // ignored, logged at debug

	g := sess.CurrentGame
	now := start
	for _, p := range DefaultPairs {
		now = now.Add(2 * time.Second)
		for _, sym := range []string{p.A, p.B} {
			c, _ := g.State.Board.Find(sym)
			x, y := g.Layout.CellOrigin(c)
			sess.HandleClick(x, y, now)
		}
		sess.Update(now.Add(time.Second))
	}

	if !sess.IsFinished() || sess.Outcome() != state.OutcomeWon {
		t.Fatalf("Expected a won session, got %s", sess.Outcome())
	}

	out := buf.String()
	for _, msg := range []string{"session created", "round started", "key ignored", "card revealed", "turn evaluated", "game over"} {
		if !strings.Contains(out, msg) {
			t.Errorf("Log output missing %q", msg)
		}
	}
	if !strings.Contains(out, sess.ID.String()) {
		t.Error("Log lines should carry the session id")
	}
	if !strings.Contains(out, `"outcome":"won"`) {
		t.Error("Game over log should record the outcome")
	}
}
