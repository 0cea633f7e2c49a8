package change

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/vending/pkg/domain"
)

// ErrInvalidDenomination is returned when a change denomination is not positive.
var ErrInvalidDenomination = errors.New("change denomination must be positive")

// ErrNoDenominations is returned when the change set is empty.
var ErrNoDenominations = errors.New("change denomination set is empty")

// Coin is one line of a breakdown: a denomination and how many of it to return.
type Coin struct {
	Denomination int64
	Count        int64
}

// Breakdown is the result of a change computation, ordered largest denomination first.
// Zero counts are kept; renderers filter them.
type Breakdown struct {
	Coins     []Coin
	Remainder int64
}

// Total returns the value covered by the coins.
func (b Breakdown) Total() int64 {
	var total int64
	for _, c := range b.Coins {
		total += c.Denomination * c.Count
	}
	return total
}

// Exact reports whether the coins cover the whole amount.
func (b Breakdown) Exact() bool {
	return b.Remainder == 0
}

// Map returns the breakdown as denomination -> count, including zero counts.
func (b Breakdown) Map() map[int64]int64 {
	m := make(map[int64]int64, len(b.Coins))
	for _, c := range b.Coins {
		m[c.Denomination] = c.Count
	}
	return m
}

// Calculator computes change over an immutable denomination set.
type Calculator struct {
	denominations []int64 // descending
}

// New creates a Calculator. The input set is copied and sorted descending.
func New(denominations domain.Denominations) (*Calculator, error) {
	if len(denominations) == 0 {
		return nil, ErrNoDenominations
	}
	sorted := make([]int64, len(denominations))
	for i, d := range denominations {
		if d <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDenomination, d)
		}
		sorted[i] = d
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	return &Calculator{denominations: sorted}, nil
}

// Denominations returns the change set, largest first.
func (c *Calculator) Denominations() []int64 {
	out := make([]int64, len(c.denominations))
	copy(out, c.denominations)
	return out
}

// Compute reduces amount greedily, largest denomination first.
// Negative amounts yield zero coins and are returned as the remainder.
func (c *Calculator) Compute(amount int64) Breakdown {
	b := Breakdown{Coins: make([]Coin, 0, len(c.denominations))}
	if amount < 0 {
		for _, d := range c.denominations {
			b.Coins = append(b.Coins, Coin{Denomination: d})
		}
		b.Remainder = amount
		return b
	}

	for _, d := range c.denominations {
		count := amount / d
		amount -= count * d
		b.Coins = append(b.Coins, Coin{Denomination: d, Count: count})
	}
	b.Remainder = amount
	return b
}
