package border

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ternui/tern"
)

const (
	horizontal  = "─"
	vertical    = "│"
	topLeft     = "╭"
	topRight    = "╮"
	bottomRight = "╯"
	bottomLeft  = "╰"
)

// All draws a border on every edge of win and returns the window inside
// the border.
func All(win tern.Window, style tcell.Style) tern.Window {
	w, h := win.Size()
	win.SetCell(0, 0, topLeft, style)
	win.SetCell(0, h-1, bottomLeft, style)
	win.SetCell(w-1, 0, topRight, style)
	win.SetCell(w-1, h-1, bottomRight, style)
	for i := 1; i < (w - 1); i += 1 {
		win.SetCell(i, 0, horizontal, style)
		win.SetCell(i, h-1, horizontal, style)
	}
	for i := 1; i < (h - 1); i += 1 {
		win.SetCell(0, i, vertical, style)
		win.SetCell(w-1, i, vertical, style)
	}
	return win.New(1, 1, w-2, h-2)
}

// Titled draws a border on every edge of win with a title embedded in the
// top edge, and returns the window inside the border.
func Titled(win tern.Window, title string, style tcell.Style) tern.Window {
	inner := All(win, style)
	if title != "" {
		w, _ := win.Size()
		win.New(2, 0, w-4, 1).Println(0, tern.Segment{
			Text:  " " + title + " ",
			Style: style,
		})
	}
	return inner
}

// Top draws a border on the top edge of win and returns the window below
// it.
func Top(win tern.Window, style tcell.Style) tern.Window {
	w, _ := win.Size()
	for i := 0; i < w; i += 1 {
		win.SetCell(i, 0, horizontal, style)
	}
	return win.New(0, 1, -1, -1)
}

// Bottom draws a border on the bottom edge of win and returns the window
// above it.
func Bottom(win tern.Window, style tcell.Style) tern.Window {
	w, h := win.Size()
	for i := 0; i < w; i += 1 {
		win.SetCell(i, h-1, horizontal, style)
	}
	return win.New(0, 0, -1, h-1)
}

// Left draws a border on the left edge of win and returns the window to
// the right of it.
func Left(win tern.Window, style tcell.Style) tern.Window {
	_, h := win.Size()
	for i := 0; i < h; i += 1 {
		win.SetCell(0, i, vertical, style)
	}
	return win.New(1, 0, -1, -1)
}

// Right draws a border on the right edge of win and returns the window to
// the left of it.
func Right(win tern.Window, style tcell.Style) tern.Window {
	w, h := win.Size()
	for i := 0; i < h; i += 1 {
		win.SetCell(w-1, i, vertical, style)
	}
	return win.New(0, 0, w-1, -1)
}
