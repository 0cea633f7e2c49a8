package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
)

const exitNodeID = "exit"

// GraphOverlay contains session data to highlight on the graph.
type GraphOverlay struct {
	CurrentScreen domain.Screen
}

// GenerateMermaid produces a Mermaid flowchart from the screen transition table.
// It applies semantic styling:
// - Main menu: ((Circle))
// - Exit: [[Subroutine]]
// - Other screens: [/Parallelogram/] since they all wait for input
// Self-loops that only post a message are drawn dotted.
func GenerateMermaid(transitions []domain.Transition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range []domain.Screen{domain.ScreenMainMenu, domain.ScreenAddFunds, domain.ScreenPurchaseItem, domain.ScreenReturnChange} {
		opener, closer := "[/", "/]"
		if s == domain.ScreenMainMenu {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", s.Slug(), opener, s, closer)
	}
	fmt.Fprintf(&sb, "    %s[[\"Exit\"]]\n", exitNodeID)

	for _, t := range transitions {
		to := t.To.Slug()
		if t.Exit {
			to = exitNodeID
		}
		label := strings.ReplaceAll(t.Trigger, "\"", "'")

		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if t.Trigger == domain.TriggerInvalid || t.Trigger == domain.TriggerShort {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", t.From.Slug(), arrow, to)
	}

	if overlay != nil && overlay.CurrentScreen.Valid() {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s current;\n", overlay.CurrentScreen.Slug())
	}

	return sb.String()
}
