package tui

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/vending/pkg/change"
	"github.com/aretw0/vending/pkg/domain"
)

// NewHighlighter returns a content renderer that colours the lines a user must not miss:
// refusals in red, receipts and returned change in green. Other text is left as is.
// Colours degrade to plain text when w is not a colour terminal.
func NewHighlighter(w io.Writer) func(string) (string, error) {
	out := termenv.NewOutput(w)
	red := out.Color("#ef4444")
	green := out.Color("#10b981")
	insufficient := domain.InsufficientFundsMessage
	invalidPrefix := strings.SplitN(domain.InvalidInputTemplate, "%s", 2)[0]

	return func(text string) (string, error) {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			switch {
			case line == insufficient || strings.HasPrefix(line, invalidPrefix):
				lines[i] = out.String(line).Foreground(red).String()
			case line == change.Banner, strings.HasPrefix(line, "Purchased "):
				lines[i] = out.String(line).Foreground(green).Bold().String()
			}
		}
		return strings.Join(lines, "\n"), nil
	}
}
