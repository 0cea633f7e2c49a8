package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when input is not a usable index for the current screen.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrInsufficientFunds is returned when the balance does not cover the item price.
var ErrInsufficientFunds = errors.New("insufficient funds")

// User-facing message texts.
const (
	InvalidInputTemplate     = "Invalid input given. %s is not a valid input"
	InsufficientFundsMessage = "Insufficient Funds, please change your selection or add more funds."
	ReturnChangePrompt       = "Press y to confirm, any other button to return to the Main Menu"
)

// InvalidSelectionError carries the verbatim input that failed to parse or was out of range.
type InvalidSelectionError struct {
	Input string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidSelection, e.Input)
}

func (e *InvalidSelectionError) Unwrap() error {
	return ErrInvalidSelection
}

// Message renders the user-facing text for the error.
func (e *InvalidSelectionError) Message() string {
	return fmt.Sprintf(InvalidInputTemplate, e.Input)
}
