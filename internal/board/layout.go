package board

// Layout places the grid on the canvas. All values are in canvas cells.
type Layout struct {
	CardWidth  int
	CardHeight int
	MarginX    int
	MarginY    int
	OriginX    int
	OriginY    int
	Rows       int
	Cols       int
}

// NewLayout centres a rows x cols grid on a canvasW x canvasH canvas. The
// trailing margin counts toward the grid size, so the origin matches the
// classic (canvas - n*(size+margin)) / 2 placement.
func NewLayout(canvasW, canvasH, cardW, cardH, marginX, marginY, rows, cols int) Layout {
	return Layout{
		CardWidth:  cardW,
		CardHeight: cardH,
		MarginX:    marginX,
		MarginY:    marginY,
		OriginX:    (canvasW - cols*(cardW+marginX)) / 2,
		OriginY:    (canvasH - rows*(cardH+marginY)) / 2,
		Rows:       rows,
		Cols:       cols,
	}
}

func (l Layout) Width() int {
	return l.Cols * (l.CardWidth + l.MarginX)
}

func (l Layout) Height() int {
	return l.Rows * (l.CardHeight + l.MarginY)
}

// CellOrigin returns the top-left corner of the card at c.
func (l Layout) CellOrigin(c Coord) (x, y int) {
	return l.OriginX + c.Col*(l.CardWidth+l.MarginX),
		l.OriginY + c.Row*(l.CardHeight+l.MarginY)
}

// Locate maps a canvas point to the card whose rectangle contains it.
// Points in a margin or outside the grid report false.
func (l Layout) Locate(x, y int) (Coord, bool) {
	col, ok := axis(x-l.OriginX, l.CardWidth, l.MarginX, l.Cols)
	if !ok {
		return Coord{}, false
	}
	row, ok := axis(y-l.OriginY, l.CardHeight, l.MarginY, l.Rows)
	if !ok {
		return Coord{}, false
	}
	return Coord{Row: row, Col: col}, true
}

func axis(offset, size, margin, count int) (int, bool) {
	if offset < 0 || size <= 0 {
		return 0, false
	}
	stride := size + margin
	idx := offset / stride
	if idx >= count || offset%stride >= size {
		return 0, false
	}
	return idx, true
}
