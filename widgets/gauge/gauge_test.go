package gauge

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternui/tern"
)

func drawGauge(t *testing.T, percent int, cols int) string {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, 1)
	t.Cleanup(screen.Fini)

	Gauge{Percent: percent}.Draw(tern.NewWindow(screen))
	screen.Show()

	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for col := 0; col < width; col += 1 {
		if len(cells[col].Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(string(cells[col].Runes))
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestDraw(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    string
	}{
		{name: "empty", percent: 0, want: ""},
		{name: "half", percent: 50, want: "█████"},
		{name: "full", percent: 100, want: "██████████"},
		{name: "partial block", percent: 55, want: "█████▌"},
		{name: "clamped high", percent: 250, want: "██████████"},
		{name: "clamped low", percent: -10, want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, drawGauge(t, test.percent, 10))
		})
	}
}
