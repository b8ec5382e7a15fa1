package surface

import (
	"image/color"
	"math"
	"strings"

	"clockface/internal/engine2D"
)

// Glyphs used by GridCanvas.
const (
	GlyphEmpty  = ' '
	GlyphDial   = ' '
	GlyphShadow = '░'
	GlyphThin   = '·'
	GlyphMedium = '•'
	GlyphThick  = '█'
)

// shadowCellRatio is the share of the blur radius drawn as shadow cells.
const shadowCellRatio = 0.25

// Cell is one character position of a GridCanvas.
type Cell struct {
	Glyph rune
	Color color.RGBA
	// Background is set for cells covered by the dial.
	Background color.RGBA
	Dial       bool
	Set        bool
}

// GridCanvas rasterizes a virtual width x height surface onto cols x rows
// character cells, for terminals.
type GridCanvas struct {
	cols, rows    int
	width, height float64
	cells         []Cell
}

// NewGridCanvas maps a surface of width x height units onto cols x rows cells.
func NewGridCanvas(cols, rows int, width, height float64) *GridCanvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &GridCanvas{
		cols:   cols,
		rows:   rows,
		width:  width,
		height: height,
		cells:  make([]Cell, cols*rows),
	}
	g.Clear()
	return g
}

func (g *GridCanvas) Cols() int { return g.cols }
func (g *GridCanvas) Rows() int { return g.rows }

// Clear resets every cell to empty.
func (g *GridCanvas) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: GlyphEmpty}
	}
}

// Cell returns the cell at col, row. Out of range positions return an empty cell.
func (g *GridCanvas) Cell(col, row int) Cell {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Cell{Glyph: GlyphEmpty}
	}
	return g.cells[row*g.cols+col]
}

func (g *GridCanvas) cellSize() (float64, float64) {
	return g.width / float64(g.cols), g.height / float64(g.rows)
}

// cellCenter returns the surface position of the middle of a cell.
func (g *GridCanvas) cellCenter(col, row int) engine2D.Vec2 {
	cw, ch := g.cellSize()
	return engine2D.Vec2{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
}

func (g *GridCanvas) cellAt(p engine2D.Vec2) (int, int, bool) {
	cw, ch := g.cellSize()
	col := int(math.Floor(p.X / cw))
	row := int(math.Floor(p.Y / ch))
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (g *GridCanvas) FillCircle(circle engine2D.Circle) {
	shadowEdge := circle.Radius + circle.ShadowBlur*shadowCellRatio
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			d := engine2D.Distance(circle.Center, g.cellCenter(col, row))
			cell := &g.cells[row*g.cols+col]
			switch {
			case d <= circle.Radius:
				*cell = Cell{Glyph: GlyphDial, Background: circle.Fill, Dial: true, Set: true}
			case circle.ShadowColor.A > 0 && d <= shadowEdge:
				*cell = Cell{Glyph: GlyphShadow, Color: circle.ShadowColor, Set: true}
			}
		}
	}
}

func (g *GridCanvas) StrokeLine(line engine2D.Line) {
	glyph := lineGlyph(line.Width)
	cw, ch := g.cellSize()
	step := math.Min(cw, ch) / 2
	steps := int(math.Ceil(line.Length() / step))
	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := engine2D.Vec2{
			X: line.Start.X + (line.End.X-line.Start.X)*t,
			Y: line.Start.Y + (line.End.Y-line.Start.Y)*t,
		}
		col, row, ok := g.cellAt(p)
		if !ok {
			continue
		}
		cell := &g.cells[row*g.cols+col]
		cell.Glyph = glyph
		cell.Color = line.Color
		cell.Set = true
	}
}

func lineGlyph(width float64) rune {
	switch {
	case width <= 1:
		return GlyphThin
	case width <= 3:
		return GlyphMedium
	default:
		return GlyphThick
	}
}

// String renders the glyphs without color, one line per row.
func (g *GridCanvas) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			b.WriteRune(g.cells[row*g.cols+col].Glyph)
		}
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
