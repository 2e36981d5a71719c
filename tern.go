// Package tern is a minimal component runtime for terminal user interfaces.
//
// tern owns the terminal device for the duration of a run: it enters raw
// mode and the alternate screen, multiplexes asynchronous input with
// periodic redraw ticks, and dispatches both to a single root [Component].
// Input capture and rendering run as two concurrent loops connected by
// bounded channels; the terminal is restored on every exit path, including
// errors and panics.
//
// Decoding raw input and addressing the terminal are delegated to tcell;
// tern defines no escape sequences of its own.
package tern

import (
	"log/slog"
	"time"
)

// Options provide setup options for an [App].
type Options struct {
	// Logger is an optional slog.Logger that tern will log to. tern uses
	// stdlib levels for logging. A nil Logger discards all output.
	Logger *slog.Logger

	// FrameInterval is the cadence of the render loop. Each frame drains
	// pending events and messages and performs one render. Default is
	// 16ms.
	FrameInterval time.Duration

	// TickInterval is the cadence of Tick events delivered to the
	// component, independent of user input. Default is 250ms.
	TickInterval time.Duration

	// EventBuffer is the capacity of the event channel between the input
	// loop and the render loop. Default is 100. The exact value affects
	// only resilience under load, not correctness: the render loop drains
	// the channel every frame.
	EventBuffer int

	// MessageBuffer is the capacity of the message channel. Default is
	// 100.
	MessageBuffer int

	// Mouse enables mouse event reporting.
	Mouse bool
}
