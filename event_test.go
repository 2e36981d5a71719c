package tern

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  tcell.Event
		want Event
		ok   bool
	}{
		{
			name: "rune key",
			raw:  tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
			want: Key{Code: tcell.KeyRune, Rune: 'q'},
			ok:   true,
		},
		{
			name: "arrow key with modifier",
			raw:  tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift),
			want: Key{Code: tcell.KeyUp, Modifiers: tcell.ModShift},
			ok:   true,
		},
		{
			name: "mouse",
			raw:  tcell.NewEventMouse(3, 7, tcell.Button1, tcell.ModNone),
			want: Mouse{Button: tcell.Button1, Col: 3, Row: 7},
			ok:   true,
		},
		{
			name: "resize",
			raw:  tcell.NewEventResize(80, 24),
			want: Resize{Cols: 80, Rows: 24},
			ok:   true,
		},
		{
			name: "unrecognized raw item",
			raw:  tcell.NewEventInterrupt(nil),
			want: nil,
			ok:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := decodeEvent(test.raw)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestEventResultString(t *testing.T) {
	assert.Equal(t, "consumed", Consumed.String())
	assert.Equal(t, "propagate", Propagate.String())
}
