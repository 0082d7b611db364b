package board

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var farmPairs = PairMapping{
	{A: "🐂", B: "🥩"},
	{A: "🐖", B: "🥓"},
	{A: "🐄", B: "🥛"},
	{A: "🐝", B: "🍯"},
	{A: "🌽", B: "🍿"},
	{A: "🐓", B: "🥚"},
	{A: "🚜", B: "🍎"},
	{A: "👩🏽‍🌾", B: "👨🏻‍💼"},
}

func sorted(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func TestNew_DealsEveryPairOnce(t *testing.T) {
	want := sorted(farmPairs.Pool())

	for seed := int64(0); seed < 20; seed++ {
		b, err := New(farmPairs, 4, 4, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		got := sorted(b.Symbols())
		if !slices.Equal(got, want) {
			t.Fatalf("seed %d: symbol multiset changed.\n got %v\nwant %v", seed, got, want)
		}
		b.Each(func(c Coord, card Card) {
			if card.Revealed || card.Matched {
				t.Errorf("seed %d: card %s should start face down", seed, c)
			}
		})
		if b.Remaining() != len(farmPairs) {
			t.Errorf("seed %d: expected %d remaining pairs, got %d", seed, len(farmPairs), b.Remaining())
		}
	}
}

func TestNew_SameSeedSameBoard(t *testing.T) {
	a, _ := New(farmPairs, 4, 4, rand.New(rand.NewSource(42)))
	b, _ := New(farmPairs, 4, 4, rand.New(rand.NewSource(42)))
	if !slices.Equal(a.Symbols(), b.Symbols()) {
		t.Error("Boards built from the same seed should be identical")
	}
}

func TestNew_SelfPairAppearsTwice(t *testing.T) {
	pairs := PairMapping{{A: "🍒", B: "🍒"}, {A: "🍋", B: "🍋"}}
	b, err := New(pairs, 2, 2, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	counts := map[string]int{}
	for _, s := range b.Symbols() {
		counts[s]++
	}
	if counts["🍒"] != 2 || counts["🍋"] != 2 {
		t.Errorf("Expected each symbol twice, got %v", counts)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name       string
		pairs      PairMapping
		rows, cols int
		want       error
	}{
		{"too many cells", farmPairs, 4, 5, ErrGridSize},
		{"too few cells", farmPairs, 3, 4, ErrGridSize},
		{"zero rows", farmPairs, 0, 16, ErrGridSize},
		{"empty symbol", PairMapping{{A: "", B: "x"}}, 1, 2, ErrInvalidPairs},
		{"shared symbol", PairMapping{{A: "a", B: "b"}, {A: "b", B: "c"}}, 2, 2, ErrInvalidPairs},
		{"no pairs", PairMapping{}, 0, 0, ErrGridSize},
	}

	for _, tt := range tests {
		_, err := New(tt.pairs, tt.rows, tt.cols, rand.New(rand.NewSource(1)))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

// Each symbol should land on each cell about equally often. With 16 cells and
// 32000 deals the expected count per (symbol, cell) is 2000; a biased
// comparator sort skews some cells by far more than the 20% tolerance.
func TestNew_ShuffleIsUniform(t *testing.T) {
	const trials = 32000
	rng := rand.New(rand.NewSource(7))
	pool := farmPairs.Pool()
	index := map[string]int{}
	for i, s := range pool {
		index[s] = i
	}

	counts := make([][]int, len(pool))
	for i := range counts {
		counts[i] = make([]int, len(pool))
	}

	for i := 0; i < trials; i++ {
		b, err := New(farmPairs, 4, 4, rng)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for pos, s := range b.Symbols() {
			counts[index[s]][pos]++
		}
	}

	expected := float64(trials) / float64(len(pool))
	chi := 0.0
	for sym := range counts {
		for pos, n := range counts[sym] {
			dev := float64(n) - expected
			if dev > expected*0.2 || dev < -expected*0.2 {
				t.Errorf("symbol %q at position %d: %d hits, expected about %.0f", pool[sym], pos, n, expected)
			}
			chi += dev * dev / expected
		}
	}
	// 225 degrees of freedom; the 99.99th percentile is about 320.
	if chi > 330 {
		t.Errorf("chi-square %.1f suggests a biased shuffle", chi)
	}
}

func TestCardAt(t *testing.T) {
	b, _ := New(farmPairs, 4, 4, rand.New(rand.NewSource(3)))

	card, err := b.CardAt(Coord{Row: 3, Col: 3})
	if err != nil {
		t.Fatalf("CardAt failed: %v", err)
	}
	card.Revealed = true

	again, _ := b.CardAt(Coord{Row: 3, Col: 3})
	if !again.Revealed {
		t.Error("CardAt should return a pointer into the board")
	}

	for _, c := range []Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, err := b.CardAt(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CardAt(%s): expected ErrOutOfBounds, got %v", c, err)
		}
	}
}

func TestPairMapping_Related(t *testing.T) {
	tests := []struct {
		a, b   string
		expect bool
	}{
		{"🐂", "🥩", true},
		{"🥩", "🐂", true},
		{"🐝", "🍯", true},
		{"🐂", "🥓", false},
		{"🐂", "🐂", false},
		{"🍯", "🍿", false},
	}
	for _, tt := range tests {
		if got := farmPairs.Related(tt.a, tt.b); got != tt.expect {
			t.Errorf("Related(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.expect)
		}
		if farmPairs.Related(tt.a, tt.b) != farmPairs.Related(tt.b, tt.a) {
			t.Errorf("Related(%q, %q) is not symmetric", tt.a, tt.b)
		}
	}
}

func TestFind(t *testing.T) {
	b, _ := New(farmPairs, 4, 4, rand.New(rand.NewSource(5)))
	for _, sym := range farmPairs.Pool() {
		c, ok := b.Find(sym)
		if !ok {
			t.Fatalf("Find(%q) found nothing", sym)
		}
		card, _ := b.CardAt(c)
		if card.Symbol != sym {
			t.Errorf("Find(%q) returned %s holding %q", sym, c, card.Symbol)
		}
	}
	if _, ok := b.Find("🦄"); ok {
		t.Error("Find should miss a symbol that was never dealt")
	}
}
