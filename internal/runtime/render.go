package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/money"
)

// screenPrompts holds the static body of each screen, generated once from the machine tables.
type screenPrompts [domain.ScreenReturnChange + 1]string

func buildPrompts(m domain.Machine) screenPrompts {
	var p screenPrompts

	lines := make([]string, 0, len(domain.MenuScreens))
	for i, s := range domain.MenuScreens {
		lines = append(lines, fmt.Sprintf("%d: %s", i, s))
	}
	p[domain.ScreenMainMenu] = section("Main Menu", lines)

	lines = make([]string, 0, len(m.Funding))
	for i, d := range m.Funding {
		lines = append(lines, fmt.Sprintf("%d: %s", i, money.Format(d)))
	}
	p[domain.ScreenAddFunds] = section("Adding Funds", lines)

	lines = make([]string, 0, len(m.Catalog))
	for i, item := range m.Catalog {
		lines = append(lines, fmt.Sprintf("%d: %s - %s", i, item.Name, money.Format(item.Price)))
	}
	p[domain.ScreenPurchaseItem] = section("Purchase Item", lines)

	p[domain.ScreenReturnChange] = section("Return Change", []string{domain.ReturnChangePrompt})
	return p
}

func section(title string, lines []string) string {
	return "~ " + title + " ~\n\n" + strings.Join(lines, "\n")
}

// render returns the full prompt for a screen: body, navigation options and balance.
func (p *screenPrompts) render(screen domain.Screen, balance int64) string {
	var sb strings.Builder
	if screen.Valid() {
		sb.WriteString(p[screen])
	}
	if screen != domain.ScreenMainMenu {
		sb.WriteString("\nb: Back")
	}
	sb.WriteString("\nx: Exit\n")
	fmt.Fprintf(&sb, "Current change in the system: %s\n", money.Format(balance))
	sb.WriteString("\nEnter Selection: ")
	return sb.String()
}
