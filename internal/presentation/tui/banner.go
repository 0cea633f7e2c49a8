package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the machine's ASCII art banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Warm gradient, top to bottom.
	lines := []struct {
		text  string
		color string
	}{
		{" __   __            _ _           ", "#fbbf24"},
		{" \\ \\ / /__ _ __  __| (_)_ __  __ _ ", "#f59e0b"},
		{"  \\ V / -_) '  \\/ _` | | '  \\/ _` |", "#f97316"},
		{"   \\_/\\___|_||_\\__,_|_|_||_\\__, |", "#ea580c"},
		{"                           |___/ ", "#c2410c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
