package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ContentRenderer transforms text before it is written.
// This allows colouring output without coupling the engine to a terminal library.
type ContentRenderer func(string) (string, error)

// TextHandler implements ports.Terminal over plain text streams.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
}

// Option configures a TextHandler.
type Option func(*TextHandler)

// WithRenderer configures the content renderer used by Print.
func WithRenderer(renderer ContentRenderer) Option {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
// Nil streams default to os.Stdin and os.Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...Option) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Print writes text and a trailing newline, passing it through the renderer if one is set.
func (h *TextHandler) Print(ctx context.Context, text string) error {
	output := text
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, output)
	return err
}

// Prompt writes text and blocks for one line of input.
// Lines rejected by SanitizeInput are reported and the prompt is shown again.
func (h *TextHandler) Prompt(ctx context.Context, text string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := fmt.Fprint(h.Writer, text); err != nil {
			return "", err
		}

		line, err := h.readLine()
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(line)
		if err != nil {
			fmt.Fprintf(h.Writer, "\nError: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}

func (h *TextHandler) readLine() (string, error) {
	text, err := h.Reader.ReadString('\n')
	if err != nil {
		// A final line without a newline is still a line.
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}
