package tern

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Window is a rectangular region of the screen. Drawing through a Window
// is offset by its origin and clipped to its bounds. The origin 0,0 is
// the upper left corner of the region.
type Window struct {
	Column int // col offset from the screen origin
	Row    int // row offset from the screen origin
	Width  int // width of the region, in cols
	Height int // height of the region, in rows

	screen tcell.Screen
}

// NewWindow returns a Window covering the entire screen.
func NewWindow(screen tcell.Screen) Window {
	cols, rows := screen.Size()
	return Window{
		Width:  cols,
		Height: rows,
		screen: screen,
	}
}

// New returns a child Window offset from win by col and row. A width or
// height of -1 expands the child to the remainder of win in that
// dimension. The child cannot exceed its parent's bounds.
func (win Window) New(col, row, cols, rows int) Window {
	if cols < 0 {
		cols = win.Width - col
	}
	if rows < 0 {
		rows = win.Height - row
	}
	if col < 0 {
		cols += col
		col = 0
	}
	if row < 0 {
		rows += row
		row = 0
	}
	if col+cols > win.Width {
		cols = win.Width - col
	}
	if row+rows > win.Height {
		rows = win.Height - row
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return Window{
		Column: win.Column + col,
		Row:    win.Row + row,
		Width:  cols,
		Height: rows,
		screen: win.screen,
	}
}

// Size reports the usable width and height of the Window in cells.
func (win Window) Size() (cols int, rows int) {
	return win.Width, win.Height
}

// SetCell writes one grapheme cluster at col, row. Writes outside the
// Window are discarded.
func (win Window) SetCell(col, row int, grapheme string, style tcell.Style) {
	if win.screen == nil {
		return
	}
	if col < 0 || row < 0 || col >= win.Width || row >= win.Height {
		return
	}
	runes := []rune(grapheme)
	if len(runes) == 0 {
		return
	}
	win.screen.SetContent(win.Column+col, win.Row+row, runes[0], runes[1:], style)
}

// Fill writes the grapheme to every cell of the Window.
func (win Window) Fill(grapheme string, style tcell.Style) {
	for row := 0; row < win.Height; row += 1 {
		for col := 0; col < win.Width; col += 1 {
			win.SetCell(col, row, grapheme, style)
		}
	}
}

// Clear fills the Window with spaces in the default style.
func (win Window) Clear() {
	win.Fill(" ", tcell.StyleDefault)
}

// Segment is a run of text with a single style.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Print prints styled segments of text. Text is wrapped to the Window
// width and line breaks begin a new line at the first column. Text that
// overflows the height is dropped. Print returns the position after the
// last cell written.
func (win Window) Print(segs ...Segment) (col int, row int) {
	cols, rows := win.Size()
	for _, seg := range segs {
		var (
			cluster string
			rest    = seg.Text
			bound   int
			state   = -1
		)
		for len(rest) > 0 {
			cluster, rest, bound, state = uniseg.StepString(rest, state)
			if row >= rows {
				return col, row
			}
			w := bound >> uniseg.ShiftWidth
			// uniseg also flags the end of the text as a mandatory
			// break; only honor breaks from real break clusters.
			if bound&uniseg.MaskLine == uniseg.LineMustBreak && (len(rest) > 0 || w == 0) {
				col = 0
				row += 1
				continue
			}
			if col+w > cols {
				col = 0
				row += 1
				if row >= rows {
					return col, row
				}
			}
			win.SetCell(col, row, cluster, seg.Style)
			col += w
		}
	}
	return col, row
}

// Println prints styled segments on a single row without wrapping. Text
// beyond the Window width is truncated.
func (win Window) Println(row int, segs ...Segment) {
	cols, _ := win.Size()
	col := 0
	for _, seg := range segs {
		var (
			cluster string
			rest    = seg.Text
			bound   int
			state   = -1
		)
		for len(rest) > 0 {
			cluster, rest, bound, state = uniseg.StepString(rest, state)
			if col >= cols {
				return
			}
			win.SetCell(col, row, cluster, seg.Style)
			col += bound >> uniseg.ShiftWidth
		}
	}
}
