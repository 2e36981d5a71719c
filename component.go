package tern

// A Component is the pluggable unit of UI behavior: one screen's state,
// rendering, and input handling. The runtime owns exactly one root
// Component and calls its methods only from the render loop, so a
// Component needs no internal locking.
type Component interface {
	// Render draws the component's current state into win. The window
	// always reflects the most recent terminal dimensions. Render must
	// not block; a non-nil error is fatal and aborts the run.
	Render(win Window) error

	// HandleEvent reacts to one Event, mutating internal state as needed.
	// Return Consumed if the event was meaningfully acted on, Propagate
	// otherwise.
	HandleEvent(ev Event) EventResult

	// Update reacts to one Message other than Quit, which the runtime
	// intercepts before this is invoked.
	Update(msg Message)

	// SetMessageSender is called exactly once, before the first frame,
	// giving the component a handle it may use to emit Messages.
	SetMessageSender(sender Sender)
}

// Base provides no-op defaults for every Component method except Render.
// Embed it in components that only draw, or that override a subset of the
// contract.
type Base struct{}

func (Base) HandleEvent(Event) EventResult { return Propagate }

func (Base) Update(Message) {}

func (Base) SetMessageSender(Sender) {}
