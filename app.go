package tern

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFrameInterval = 16 * time.Millisecond
	defaultTickInterval  = 250 * time.Millisecond
	defaultBuffer        = 100
)

// App is the application runtime. It owns one [Guard] and one root
// [Component] and runs two concurrent loops: an input loop forwarding
// decoded terminal input and timer ticks as Events, and a render loop
// draining those Events, draining Messages, and redrawing on a fixed
// cadence. The two loops share nothing but the event channel.
type App struct {
	guard *Guard
	root  Component
	log   *slog.Logger

	frameInterval time.Duration
	tickInterval  time.Duration

	// events has exactly one producer (the input loop) and one consumer
	// (the render loop) for the lifetime of a run.
	events chan Event
	// messages has one consumer (the render loop) and any number of
	// producers holding the Sender.
	messages chan Message

	shouldQuit bool
	refresh    bool
}

// NewApp acquires the terminal and prepares a runtime around root. The
// message sender is attached to root before NewApp returns.
func NewApp(root Component, opts Options) (*App, error) {
	guard, err := NewGuard()
	if err != nil {
		return nil, err
	}
	if opts.Mouse {
		guard.Screen().EnableMouse()
	}
	return newApp(guard, root, opts), nil
}

// newApp wires a runtime around an already-acquired guard. Tests use it
// with a simulation screen.
func newApp(guard *Guard, root Component, opts Options) *App {
	app := &App{
		guard:         guard,
		root:          root,
		log:           opts.Logger,
		frameInterval: opts.FrameInterval,
		tickInterval:  opts.TickInterval,
	}
	if app.log == nil {
		app.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if app.frameInterval <= 0 {
		app.frameInterval = defaultFrameInterval
	}
	if app.tickInterval <= 0 {
		app.tickInterval = defaultTickInterval
	}
	eventBuf := opts.EventBuffer
	if eventBuf <= 0 {
		eventBuf = defaultBuffer
	}
	messageBuf := opts.MessageBuffer
	if messageBuf <= 0 {
		messageBuf = defaultBuffer
	}
	app.events = make(chan Event, eventBuf)
	app.messages = make(chan Message, messageBuf)
	root.SetMessageSender(Sender{ch: app.messages})
	return app
}

// Run executes the input and render loops until the component requests
// termination with a [Quit] message or a fatal error occurs. The terminal
// is restored before Run returns, on every path, including panics.
func (a *App) Run() error {
	defer a.guard.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	raw := make(chan tcell.Event, cap(a.events))
	go a.guard.Screen().ChannelEvents(raw, ctx.Done())

	var grp errgroup.Group
	grp.Go(func() error {
		a.inputLoop(ctx, raw)
		return nil
	})

	a.log.Debug("runtime starting", "frame", a.frameInterval, "tick", a.tickInterval)
	err := a.renderLoop(ctx)

	// The input loop holds no resources needing graceful release; cancel
	// it and wait so the guard is released only after both loops stopped.
	cancel()
	if werr := grp.Wait(); err == nil {
		err = werr
	}
	a.log.Debug("runtime stopped", "err", err)
	return err
}

// inputLoop forwards raw terminal input and timer ticks as Events. It
// never reports an error to the caller: cancellation and channel teardown
// are normal shutdown signals, and malformed input is dropped.
func (a *App) inputLoop(ctx context.Context, raw <-chan tcell.Event) {
	ticker := time.NewTicker(a.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !a.send(ctx, Tick{}) {
				return
			}
		case tev, ok := <-raw:
			if !ok {
				return
			}
			ev, ok := decodeEvent(tev)
			if !ok {
				a.log.Debug("dropping input", "raw", fmt.Sprintf("%T", tev))
				continue
			}
			if !a.send(ctx, ev) {
				return
			}
		}
	}
}

// send enqueues ev, waiting for buffer space unless the run is shutting
// down. The tick cadence self-heals any backlog, so blocking here cannot
// stall the render loop.
func (a *App) send(ctx context.Context, ev Event) bool {
	select {
	case a.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// decodeEvent translates one backend event into an Event. The bool result
// is false for raw items the runtime does not forward.
func decodeEvent(tev tcell.Event) (Event, bool) {
	switch tev := tev.(type) {
	case *tcell.EventKey:
		return Key{
			Code:      tev.Key(),
			Rune:      tev.Rune(),
			Modifiers: tev.Modifiers(),
		}, true
	case *tcell.EventMouse:
		col, row := tev.Position()
		return Mouse{
			Button:    tev.Buttons(),
			Col:       col,
			Row:       row,
			Modifiers: tev.Modifiers(),
		}, true
	case *tcell.EventResize:
		cols, rows := tev.Size()
		return Resize{Cols: cols, Rows: rows}, true
	default:
		return nil, false
	}
}

func (a *App) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.frame(); err != nil {
				return err
			}
			if a.shouldQuit {
				a.log.Debug("quit requested")
				return nil
			}
		}
	}
}

// frame performs one render-loop pass: drain all buffered events, drain
// all buffered messages, then render once unless a quit was observed.
// Events are always handled before messages within a pass.
func (a *App) frame() error {
	a.drainEvents()
	a.drainMessages()
	if a.shouldQuit {
		return nil
	}
	return a.render()
}

func (a *App) drainEvents() {
	for {
		select {
		case ev := <-a.events:
			if _, ok := ev.(Resize); ok {
				// A full repaint is needed after the backend resizes
				// its buffers.
				a.refresh = true
			}
			if res := a.root.HandleEvent(ev); res == Propagate {
				a.log.Debug("event not consumed", "event", fmt.Sprintf("%T", ev))
			}
		default:
			return
		}
	}
}

func (a *App) drainMessages() {
	for {
		select {
		case msg := <-a.messages:
			if _, ok := msg.(Quit); ok {
				// Terminal, but the current pass finishes draining.
				a.shouldQuit = true
				continue
			}
			a.root.Update(msg)
		default:
			return
		}
	}
}

func (a *App) render() error {
	screen := a.guard.Screen()
	screen.Clear()
	if err := a.root.Render(NewWindow(screen)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if a.refresh {
		a.refresh = false
		screen.Sync()
		return nil
	}
	screen.Show()
	return nil
}
