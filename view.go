package main

import (
	"fmt"
	"strings"
	"time"

	"emoji-mem/internal/board"
	"emoji-mem/internal/game"
	"emoji-mem/internal/state"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	winStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green for a win
	loseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red for a timeout
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)

	cardBackColor  = lipgloss.Color("#4682B4") // Steel blue
	cardFaceColor  = lipgloss.Color("#C8C8C8")
	cardMatchColor = lipgloss.Color("10")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center, lipgloss.Center)
)

func (s *LocalState) View() string {
	g := s.Session.CurrentGame

	switch g.State.Phase() {
	case state.PhaseWaiting:
		return s.renderInstructions()
	case state.PhaseGameOver:
		return s.renderGameOver(s.now())
	}
	return s.renderPlaying(s.now())
}

func (s *LocalState) renderInstructions() string {
	cfg := s.Session.Config

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Emoji Memory!"),
		"",
		fmt.Sprintf("Find %d pairs of cards in %s.", len(cfg.Pairs), formatLimit(cfg.TimeLimit)),
		"Click a card to turn it over.",
		"",
		"Press SPACE to start...",
		"",
		s.help.View(s.keys),
	)
	return lipgloss.Place(cfg.CanvasWidth, cfg.CanvasHeight, lipgloss.Center, lipgloss.Center, body)
}

func (s *LocalState) renderGameOver(now time.Time) string {
	cfg := s.Session.Config
	g := s.Session.CurrentGame

	msgStyle := loseStyle
	if g.State.Outcome == state.OutcomeWon {
		msgStyle = winStyle
	}

	score := g.State.Score
	summary := fmt.Sprintf("Pairs: %d/%d | Turns: %d | Misses: %d | Best streak: %d",
		g.State.MatchedPairs, g.State.PairCount(), score.Turns, score.Misses, score.BestStreak)
	stats := fmt.Sprintf("Accuracy: %.0f%% | Time left: %ds", score.Accuracy()*100, g.State.Remaining(now))

	rows := []string{msgStyle.Render(g.State.Message), "", summary, stats}
	if last := score.GetLastN(3); len(last) > 0 {
		rows = append(rows, "", "Last turns:")
		for _, rec := range last {
			result := "miss"
			if rec.Matched {
				result = "pair"
			}
			rows = append(rows, dimStyle.Render(fmt.Sprintf("#%d %s %s %s", rec.Turn, rec.Symbols[0], rec.Symbols[1], result)))
		}
	}

	keys := s.keys
	keys.Start.SetEnabled(false)
	rows = append(rows, "", "Restart the program to play again.", "", s.help.View(keys))
	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.Place(cfg.CanvasWidth, cfg.CanvasHeight, lipgloss.Center, lipgloss.Center, body)
}

// renderPlaying lays out the canvas row by row so that every card lands on
// the cells the layout reports for it.
func (s *LocalState) renderPlaying(now time.Time) string {
	cfg := s.Session.Config
	g := s.Session.CurrentGame
	lines := make([]string, cfg.CanvasHeight)

	lines[0] = s.renderStatusLine(now)
	lines[game.HUDHeight-1] = s.renderTallyLine()

	for r, block := range renderBoard(g.State.Board, g.Layout) {
		y := g.Layout.OriginY + r
		if y < len(lines) {
			lines[y] = strings.Repeat(" ", g.Layout.OriginX) + block
		}
	}

	return strings.Join(lines, "\n")
}

func (s *LocalState) renderStatusLine(now time.Time) string {
	cfg := s.Session.Config
	g := s.Session.CurrentGame

	remaining := g.State.Remaining(now)
	timeStyle := hudStyle
	if float64(remaining) <= cfg.TimeLimit.Seconds()/3.0 {
		timeStyle = lowStyle
	}

	left := timeStyle.Render(fmt.Sprintf("Time: %ds", remaining))
	right := hudStyle.Render(fmt.Sprintf("Pairs: %d/%d", g.State.MatchedPairs, g.State.PairCount()))
	gap := cfg.CanvasWidth - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + right + " "
}

func (s *LocalState) renderTallyLine() string {
	g := s.Session.CurrentGame
	keys := s.keys
	keys.Start.SetEnabled(false)

	tally := dimStyle.Render(fmt.Sprintf("Turns: %d | Misses: %d", g.State.Score.Turns, g.State.Score.Misses))
	return " " + tally + "   " + s.help.View(keys)
}

// renderBoard returns the board as canvas lines, starting at the layout's
// first row and without the horizontal origin offset.
func renderBoard(b *board.Board, l board.Layout) []string {
	gap := strings.Repeat(" ", l.MarginX)
	var lines []string

	for r := 0; r < b.Rows; r++ {
		cardLines := make([][]string, b.Cols)
		for c := 0; c < b.Cols; c++ {
			card, _ := b.CardAt(board.Coord{Row: r, Col: c})
			cardLines[c] = strings.Split(renderCard(*card, l), "\n")
		}
		for i := 0; i < l.CardHeight; i++ {
			var row strings.Builder
			for c := 0; c < b.Cols; c++ {
				if c > 0 {
					row.WriteString(gap)
				}
				if i < len(cardLines[c]) {
					row.WriteString(cardLines[c][i])
				}
			}
			lines = append(lines, row.String())
		}
		for i := 0; i < l.MarginY; i++ {
			lines = append(lines, "")
		}
	}
	return lines
}

func renderCard(card board.Card, l board.Layout) string {
	inner := l.CardWidth - 2
	style := cardStyle.Width(inner).Height(l.CardHeight - 2)

	switch {
	case card.Matched:
		return style.BorderForeground(cardMatchColor).Render(card.Symbol)
	case card.Revealed:
		return style.BorderForeground(cardFaceColor).Render(card.Symbol)
	default:
		back := strings.Repeat("░", inner)
		return style.BorderForeground(cardBackColor).Foreground(cardBackColor).Render(back)
	}
}

func formatLimit(d time.Duration) string {
	switch {
	case d == time.Minute:
		return "1 minute"
	case d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return fmt.Sprintf("%d seconds", int(d/time.Second))
}
