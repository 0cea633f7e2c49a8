package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_MenuOffset(t *testing.T) {
	for i, s := range MenuScreens {
		assert.Equal(t, Screen(i+1), s, "menu index %d should map to enum position %d", i, i+1)
	}
}

func TestScreen_String(t *testing.T) {
	tests := []struct {
		screen Screen
		label  string
		slug   string
	}{
		{ScreenMainMenu, "Main Menu", "main_menu"},
		{ScreenAddFunds, "Add Funds", "add_funds"},
		{ScreenPurchaseItem, "Purchase Item", "purchase_item"},
		{ScreenReturnChange, "Return Change", "return_change"},
		{Screen(9), "Screen(9)", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.screen.String())
			assert.Equal(t, tt.slug, tt.screen.Slug())
		})
	}
	assert.False(t, Screen(9).Valid())
	assert.True(t, ScreenReturnChange.Valid())
}

func TestInvalidSelectionError(t *testing.T) {
	err := &InvalidSelectionError{Input: "abc"}

	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, "Invalid input given. abc is not a valid input", err.Message())
}

func TestCatalog_Lookup(t *testing.T) {
	c := Catalog{{Name: "Soda", Price: 100}}

	item, ok := c.Lookup(0)
	assert.True(t, ok)
	assert.Equal(t, "Soda", item.Name)

	_, ok = c.Lookup(1)
	assert.False(t, ok)
	_, ok = c.Lookup(-1)
	assert.False(t, ok)
}

func TestParseScreen(t *testing.T) {
	for s := ScreenMainMenu; s.Valid(); s++ {
		got, err := ParseScreen(s.Slug())
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseScreen("checkout")
	assert.Error(t, err)
}
