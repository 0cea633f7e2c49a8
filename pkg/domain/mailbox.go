package domain

// Mailbox holds at most one pending message for the user.
// A posted message is surfaced once by Drain and then discarded.
type Mailbox struct {
	msg     string
	pending bool
}

// Post stores msg for the next render, replacing any message not yet drained.
func (m *Mailbox) Post(msg string) {
	m.msg = msg
	m.pending = true
}

// Drain returns the pending message and empties the mailbox.
// ok is false when there was nothing to show.
func (m *Mailbox) Drain() (msg string, ok bool) {
	if !m.pending {
		return "", false
	}
	msg = m.msg
	m.msg, m.pending = "", false
	return msg, true
}

// Peek returns the pending message without consuming it.
func (m Mailbox) Peek() (string, bool) {
	return m.msg, m.pending
}
