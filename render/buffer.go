package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

var blank = Cell{Rune: ' ', Fg: RgbLabel, Bg: RgbBackground}

// Buffer is a cell compositor with dirty tracking, flushed to a tcell screen
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blank
	b.touched[0] = true
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.width + x
	b.cells[i] = c
	b.touched[i] = true
}

func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blank
	}
	return b.cells[y*b.width+x]
}

// Text writes s left to right on the background
func (b *Buffer) Text(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.Set(x, y, Cell{Rune: r, Fg: fg, Bg: RgbBackground})
		x++
	}
}

// Flush copies touched cells to the screen and resets tracking
func (b *Buffer) Flush(s tcell.Screen) {
	for i, t := range b.touched {
		if !t {
			continue
		}
		c := b.cells[i]
		style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell())
		s.SetContent(i%b.width, i/b.width, c.Rune, nil, style)
		b.touched[i] = false
	}
}
