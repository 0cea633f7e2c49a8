package domain

// Session represents the current snapshot of one user's interaction with the machine.
type Session struct {
	// Screen is the active page.
	Screen Screen

	// Balance is the stored value in minor currency units. Never negative.
	Balance int64

	// Message is the pending user-facing message, shown on the next render.
	Message Mailbox

	// ExitRequested terminates the session loop once set.
	ExitRequested bool
}

// NewSession creates a clean session on the main menu with no funds.
func NewSession() *Session {
	return &Session{Screen: ScreenMainMenu}
}
