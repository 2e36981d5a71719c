package tern

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardReleaseIsIdempotent(t *testing.T) {
	screen := &finiScreen{SimulationScreen: tcell.NewSimulationScreen("")}
	guard, err := newGuard(screen)
	require.NoError(t, err)
	require.Same(t, screen, guard.Screen().(*finiScreen))

	guard.Release()
	guard.Release()
	guard.Release()
	assert.Equal(t, 1, screen.finis)
}

// brokenFini panics during teardown.
type brokenFini struct {
	tcell.SimulationScreen
}

func (b *brokenFini) Fini() {
	panic("tty went away")
}

func TestGuardReleaseSwallowsTeardownFailure(t *testing.T) {
	guard, err := newGuard(&brokenFini{SimulationScreen: tcell.NewSimulationScreen("")})
	require.NoError(t, err)

	assert.NotPanics(t, guard.Release)
}
