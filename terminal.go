package tern

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Guard owns the process-wide terminal state for one run. Construction
// puts the terminal into raw mode and switches to the alternate screen;
// Release reverses both. Exactly one live Guard should exist per process.
type Guard struct {
	screen tcell.Screen
	once   sync.Once
}

// NewGuard acquires the terminal. The raw mode and alternate screen
// switches are applied together: on failure no partial state is left
// engaged and the error is returned before any drawing begins.
func NewGuard() (*Guard, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	return newGuard(screen)
}

// newGuard finishes construction around an existing screen. Tests use it
// with a simulation screen.
func newGuard(screen tcell.Screen) (*Guard, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	return &Guard{screen: screen}, nil
}

// Screen exposes the render target. Only one draw may be in progress at a
// time; during a run the render loop is the sole caller.
func (g *Guard) Screen() tcell.Screen {
	return g.screen
}

// Release restores normal terminal mode and leaves the alternate screen.
// It runs at most once no matter how often it is called, and it never
// propagates failure: there is no meaningful recovery during teardown and
// the priority is not leaving the terminal corrupted.
func (g *Guard) Release() {
	g.once.Do(func() {
		defer func() {
			_ = recover()
		}()
		g.screen.Fini()
	})
}
