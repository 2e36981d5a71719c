package tern

// Message is a control notification flowing from the UI layer back into
// the runtime. [Quit] is intercepted by the runtime and ends the run; any
// other value is forwarded untouched to the component's Update method, so
// applications define custom messages as their own types.
type Message interface{}

// Quit tells the runtime to stop. Once a Quit message is observed the
// render loop finishes its current pass and exits without rendering
// again.
type Quit struct{}

// Sender posts Messages into the runtime. It is handed to the component
// once, before the first frame, and may be used from any goroutine. The
// zero value discards everything.
type Sender struct {
	ch chan Message
}

// Send enqueues msg without blocking and reports whether it was accepted.
// A nil msg, an unattached Sender, or a full message channel discards the
// message.
func (s Sender) Send(msg Message) bool {
	if s.ch == nil || msg == nil {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
