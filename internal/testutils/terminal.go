package testutils

import (
	"context"
	"io"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
)

// ScriptedTerminal is a ports.Terminal that replays canned input lines and records output.
// Once the script is exhausted, Prompt returns io.EOF.
type ScriptedTerminal struct {
	Inputs  []string
	Prompts []string
	Printed []string
	out     strings.Builder
}

// NewScriptedTerminal creates a terminal that answers prompts with inputs, in order.
func NewScriptedTerminal(inputs ...string) *ScriptedTerminal {
	return &ScriptedTerminal{Inputs: inputs}
}

func (t *ScriptedTerminal) Print(ctx context.Context, text string) error {
	t.Printed = append(t.Printed, text)
	t.out.WriteString(text)
	t.out.WriteString("\n")
	return nil
}

func (t *ScriptedTerminal) Prompt(ctx context.Context, text string) (string, error) {
	t.Prompts = append(t.Prompts, text)
	t.out.WriteString(text)
	if len(t.Inputs) == 0 {
		return "", io.EOF
	}
	line := t.Inputs[0]
	t.Inputs = t.Inputs[1:]
	t.out.WriteString(line)
	t.out.WriteString("\n")
	return line, nil
}

// Transcript returns everything written, with the replayed input echoed after each prompt.
func (t *ScriptedTerminal) Transcript() string {
	return t.out.String()
}

// DefaultMachine returns the stock tables: US coins and notes, three snacks.
func DefaultMachine() domain.Machine {
	return domain.Machine{
		Funding: domain.Denominations{5, 10, 25, 100, 200, 500, 1000, 2000, 5000, 10000},
		Change:  domain.Denominations{5, 10, 25, 100, 200},
		Catalog: domain.Catalog{
			{Name: "Candy Bar", Price: 200},
			{Name: "Chips", Price: 150},
			{Name: "Soda", Price: 100},
		},
	}
}
