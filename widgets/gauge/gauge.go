package gauge

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ternui/tern"
)

// Gauge is a horizontal percent bar rendered with eighth-block
// resolution.
type Gauge struct {
	// Percent is the fill level, 0 to 100. Values outside that range are
	// clamped.
	Percent int
	// Style is applied to the filled cells.
	Style tcell.Style
}

func (g Gauge) Draw(win tern.Window) {
	cols, rows := win.Size()
	if cols == 0 || rows == 0 {
		return
	}
	percent := float64(min(100, max(0, g.Percent)))
	fracBlocks := percent / 100 * float64(cols)
	fullBlocks := int(math.Floor(fracBlocks))
	remainder := fracBlocks - float64(fullBlocks)

	for i := 0; i < fullBlocks; i += 1 {
		win.SetCell(i, 0, "█", g.Style)
	}
	partial := ""
	switch {
	case remainder >= 0.875:
		partial = "▉"
	case remainder >= 0.75:
		partial = "▊"
	case remainder >= 0.625:
		partial = "▋"
	case remainder >= 0.5:
		partial = "▌"
	case remainder >= 0.375:
		partial = "▍"
	case remainder >= 0.25:
		partial = "▎"
	case remainder >= 0.125:
		partial = "▏"
	}
	if partial != "" {
		win.SetCell(fullBlocks, 0, partial, g.Style)
	}
}
