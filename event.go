package tern

import "github.com/gdamore/tcell/v2"

// Event is an input notification flowing from the terminal into the UI
// layer. The set of events is closed: [Key], [Mouse], [Resize], and
// [Tick]. Events are produced only by the input loop and delivered to the
// component in the order they were decoded.
type Event interface {
	event()
}

// Key is delivered when a key press is decoded from the input stream.
// Printable input has Code [tcell.KeyRune] and the character in Rune.
type Key struct {
	Code      tcell.Key
	Rune      rune
	Modifiers tcell.ModMask
}

// Mouse is delivered when a mouse action is decoded from the input
// stream. Mouse events are only reported when Options.Mouse is set.
type Mouse struct {
	Button    tcell.ButtonMask
	Col       int
	Row       int
	Modifiers tcell.ModMask
}

// Resize is delivered whenever a window size change is detected.
type Resize struct {
	Cols int
	Rows int
}

// Tick is delivered on a fixed timer so components can animate without
// user input. It carries no payload.
type Tick struct{}

func (Key) event()    {}
func (Mouse) event()  {}
func (Resize) event() {}
func (Tick) event()   {}

// EventResult reports whether a component acted on an event.
type EventResult int

const (
	// Propagate means the event was not handled and may be offered to
	// another component. With a single root component there is nothing to
	// propagate to; the value is part of the contract for future
	// composite component trees.
	Propagate EventResult = iota

	// Consumed means the event was meaningfully acted on.
	Consumed
)

func (r EventResult) String() string {
	switch r {
	case Consumed:
		return "consumed"
	default:
		return "propagate"
	}
}
