package ports

import "context"

// Terminal is the I/O boundary of the machine.
// The engine hands it complete, pre-rendered strings; the terminal only displays them
// and reads back one line of free-form text at a time.
type Terminal interface {
	// Print displays text followed by a line break.
	Print(ctx context.Context, text string) error

	// Prompt displays text without a line break and blocks until one line of input is read.
	// Returns io.EOF when the input is exhausted.
	Prompt(ctx context.Context, text string) (string, error)
}
