package tern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderDelivers(t *testing.T) {
	ch := make(chan Message, 2)
	sender := Sender{ch: ch}

	assert.True(t, sender.Send(Quit{}))
	assert.True(t, sender.Send("hello"))
	assert.Equal(t, Quit{}, <-ch)
	assert.Equal(t, "hello", <-ch)
}

func TestSenderNeverBlocks(t *testing.T) {
	ch := make(chan Message, 1)
	sender := Sender{ch: ch}

	assert.True(t, sender.Send("first"))
	// A full channel drops the message instead of blocking.
	assert.False(t, sender.Send("second"))
	assert.Equal(t, "first", <-ch)
}

func TestSenderZeroValueDiscards(t *testing.T) {
	var sender Sender
	assert.False(t, sender.Send(Quit{}))
}

func TestSenderDiscardsNil(t *testing.T) {
	sender := Sender{ch: make(chan Message, 1)}
	assert.False(t, sender.Send(nil))
}
