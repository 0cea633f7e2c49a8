package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailbox_DrainOnce(t *testing.T) {
	var m Mailbox

	_, ok := m.Drain()
	assert.False(t, ok, "empty mailbox should have nothing to drain")

	m.Post("hello")
	msg, ok := m.Peek()
	assert.True(t, ok)
	assert.Equal(t, "hello", msg)

	msg, ok = m.Drain()
	assert.True(t, ok)
	assert.Equal(t, "hello", msg)

	_, ok = m.Drain()
	assert.False(t, ok, "message must be shown at most once")
}

func TestMailbox_PostReplacesPending(t *testing.T) {
	var m Mailbox
	m.Post("first")
	m.Post("second")

	msg, ok := m.Drain()
	assert.True(t, ok)
	assert.Equal(t, "second", msg)
}

func TestMailbox_EmptyMessageIsStillDelivered(t *testing.T) {
	var m Mailbox
	m.Post("")

	msg, ok := m.Drain()
	assert.True(t, ok)
	assert.Empty(t, msg)
}
