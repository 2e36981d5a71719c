package align

import "github.com/ternui/tern"

// Center returns a Window centered vertically and horizontally within the
// parent window.
func Center(parent tern.Window, cols int, rows int) tern.Window {
	pCols, pRows := parent.Size()
	col := (pCols / 2) - (cols / 2)
	row := (pRows / 2) - (rows / 2)
	return parent.New(col, row, cols, rows)
}

func TopLeft(parent tern.Window, cols int, rows int) tern.Window {
	return parent.New(0, 0, cols, rows)
}

func TopMiddle(parent tern.Window, cols int, rows int) tern.Window {
	pCols, _ := parent.Size()
	col := (pCols / 2) - (cols / 2)
	return parent.New(col, 0, cols, rows)
}

func TopRight(parent tern.Window, cols int, rows int) tern.Window {
	pCols, _ := parent.Size()
	return parent.New(pCols-cols, 0, cols, rows)
}

func BottomLeft(parent tern.Window, cols int, rows int) tern.Window {
	_, pRows := parent.Size()
	return parent.New(0, pRows-rows, cols, rows)
}

func BottomMiddle(parent tern.Window, cols int, rows int) tern.Window {
	pCols, pRows := parent.Size()
	col := (pCols / 2) - (cols / 2)
	return parent.New(col, pRows-rows, cols, rows)
}

func BottomRight(parent tern.Window, cols int, rows int) tern.Window {
	pCols, pRows := parent.Size()
	return parent.New(pCols-cols, pRows-rows, cols, rows)
}
