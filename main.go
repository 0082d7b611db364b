package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"emoji-mem/internal/game"
	"emoji-mem/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// frameInterval drives timeout polling and delayed evaluations.
const frameInterval = 100 * time.Millisecond

type LocalState struct {
	Session *game.Session
	keys    keyMap
	help    help.Model
	now     func() time.Time
}

type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

type keyMap struct {
	Start key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func initialModel(cfg game.Config, seed int64, logger zerolog.Logger) (*LocalState, error) {
	sess, err := game.NewSession(cfg, seed, logger)
	if err != nil {
		return nil, err
	}

	return &LocalState{
		Session: sess,
		keys:    newKeyMap(),
		help:    help.New(),
		now:     time.Now,
	}, nil
}

func (s *LocalState) Init() tea.Cmd {
	return frameCmd()
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		s.Session.Update(time.Time(msg))
		return s, frameCmd()
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Quit) {
			return s, tea.Quit
		}
		s.Session.HandleKeyPress(msg.String(), s.now())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			s.Session.HandleClick(msg.X, msg.Y, s.now())
		}
	}

	return s, nil
}

type levelFlag zerolog.Level

func (l *levelFlag) String() string {
	return zerolog.Level(*l).String()
}

func (l *levelFlag) Set(s string) error {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", s)
	}
	*l = levelFlag(lvl)
	return nil
}

type seedFlag struct {
	value int64
	set   bool
}

func (f *seedFlag) String() string {
	if !f.set {
		return "random"
	}
	return strconv.FormatInt(f.value, 10)
}

func (f *seedFlag) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed: %s", s)
	}
	f.value, f.set = v, true
	return nil
}

func newLogger(path string, level zerolog.Level) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, func() { file.Close() }, nil
}

func main() {
	// defaults
	var seed seedFlag
	var logPath string
	logLevel := levelFlag(zerolog.InfoLevel)

	flag.Var(&seed, "seed", "Seed for the card shuffle. Default is random.")
	flag.StringVar(&logPath, "log", "", "Write structured logs to this file")
	flag.Var(&logLevel, "log-level", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "  -seed N             Seed for the card shuffle (default random)\n")
		fmt.Fprintf(os.Stderr, "  -log PATH           Write structured logs to PATH\n")
		fmt.Fprintf(os.Stderr, "  -log-level LEVEL    debug, info, warn or error (default info)\n")
		fmt.Fprintf(os.Stderr, "  -h, --help          Show this help message\n")
	}

	flag.Parse()

	if !seed.set {
		seed.value = time.Now().UnixNano()
	}

	logger, closeLog, err := newLogger(logPath, zerolog.Level(logLevel))
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	model, err := initialModel(game.DefaultConfig(), seed.value, logger)
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
	}

	// Final output
	g := model.Session.CurrentGame
	switch g.State.Outcome {
	case state.OutcomeWon:
		fmt.Println(winStyle.Render(fmt.Sprintf("You won with %d turns.", g.State.Score.Turns)))
	case state.OutcomeTimedOut:
		fmt.Println(loseStyle.Render(fmt.Sprintf("Time ran out with %d/%d pairs.", g.State.MatchedPairs, g.State.PairCount())))
	}
}
