package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/money"
)

// CatalogMarkdown describes the machine tables as markdown: items with prices,
// accepted denominations and change denominations.
func CatalogMarkdown(m domain.Machine) string {
	var sb strings.Builder

	sb.WriteString("# Vending Machine\n\n## Items\n\n")
	sb.WriteString("| # | Item | Price |\n|---|------|------:|\n")
	for i, item := range m.Catalog {
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", i, escapeCell(item.Name), money.Format(item.Price))
	}

	sb.WriteString("\n## Accepted Funds\n\n")
	sb.WriteString("| # | Amount |\n|---|-------:|\n")
	for i, d := range m.Funding {
		fmt.Fprintf(&sb, "| %d | %s |\n", i, money.Format(d))
	}

	sb.WriteString("\n## Change Returned In\n\n")
	amounts := make([]string, 0, len(m.Change))
	for _, d := range m.Change {
		amounts = append(amounts, money.Format(d))
	}
	sb.WriteString(strings.Join(amounts, ", "))
	sb.WriteString("\n")
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
