package domain

import "fmt"

// Screen identifies one discrete interactive page of the machine.
type Screen uint8

const (
	ScreenMainMenu Screen = iota
	ScreenAddFunds
	ScreenPurchaseItem
	ScreenReturnChange
)

// MenuScreens lists the screens reachable from the main menu, in display order.
// The user-facing index i selects MenuScreens[i], which is Screen(i+1).
var MenuScreens = []Screen{ScreenAddFunds, ScreenPurchaseItem, ScreenReturnChange}

// String returns the menu label of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "Main Menu"
	case ScreenAddFunds:
		return "Add Funds"
	case ScreenPurchaseItem:
		return "Purchase Item"
	case ScreenReturnChange:
		return "Return Change"
	}
	return fmt.Sprintf("Screen(%d)", uint8(s))
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	return s <= ScreenReturnChange
}

// Slug returns a stable lower-case identifier, used for log and metric labels.
func (s Screen) Slug() string {
	switch s {
	case ScreenMainMenu:
		return "main_menu"
	case ScreenAddFunds:
		return "add_funds"
	case ScreenPurchaseItem:
		return "purchase_item"
	case ScreenReturnChange:
		return "return_change"
	}
	return "unknown"
}

// ParseScreen resolves a slug produced by Slug back to its screen.
func ParseScreen(slug string) (Screen, error) {
	for s := ScreenMainMenu; s.Valid(); s++ {
		if s.Slug() == slug {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown screen %q", slug)
}
