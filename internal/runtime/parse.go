package runtime

import (
	"strconv"

	"github.com/aretw0/vending/pkg/domain"
)

// ParseIndex converts input to an integer.
// Failures are reported as *domain.InvalidSelectionError carrying the input verbatim.
func ParseIndex(input string) (int, error) {
	i, err := strconv.Atoi(input)
	if err != nil {
		return 0, &domain.InvalidSelectionError{Input: input}
	}
	return i, nil
}

// ParseSelection converts input to an index in [0, size).
func ParseSelection(input string, size int) (int, error) {
	i, err := ParseIndex(input)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= size {
		return 0, &domain.InvalidSelectionError{Input: input}
	}
	return i, nil
}
