package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/vending/internal/presentation/graph"
	"github.com/aretw0/vending/internal/presentation/tui"
	"github.com/aretw0/vending/pkg/change"
	"github.com/aretw0/vending/pkg/domain"
)

// PrintCatalog writes the configured tables as markdown. Unless plain is set,
// the markdown is rendered for the terminal with glamour.
func PrintCatalog(w io.Writer, configPath string, plain bool) error {
	machine, err := loadMachine(configPath, createLogger(false))
	if err != nil {
		return err
	}

	md := tui.CatalogMarkdown(machine)
	if !plain {
		if md, err = tui.NewRenderer()(md); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, md)
	return err
}

// PrintChange writes the greedy breakdown of amount over the configured change set.
func PrintChange(w io.Writer, configPath string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d", amount)
	}
	machine, err := loadMachine(configPath, createLogger(false))
	if err != nil {
		return err
	}

	calc, err := change.New(machine.Change)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, change.Format(calc.Compute(amount)))
	return err
}

// PrintGraph writes the screen transition graph as a Mermaid flowchart.
// current highlights one screen; an empty string highlights none.
func PrintGraph(w io.Writer, current string) error {
	var overlay *graph.GraphOverlay
	if current != "" {
		screen, err := domain.ParseScreen(current)
		if err != nil {
			return err
		}
		overlay = &graph.GraphOverlay{CurrentScreen: screen}
	}
	_, err := fmt.Fprint(w, graph.GenerateMermaid(domain.Transitions(), overlay))
	return err
}
