package change

import (
	"testing"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		set      domain.Denominations
		step     int64
		wantOK   bool
		wantFail int64
	}{
		{"default set over nickels", defaultChange, 5, true, 0},
		{"default set over pennies", defaultChange, 1, false, 1},
		{"quarter and dime", domain.Denominations{25, 10}, 5, false, 5},
		{"quarter and dime over dimes", domain.Denominations{25, 10}, 10, false, 30},
		{"non-positive step", defaultChange, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.set)
			require.NoError(t, err)

			amount, ok := c.Verify(tt.step)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantFail, amount)
		})
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(5), GCD(5, 10, 25, 100, 150))
	assert.Equal(t, int64(50), GCD(100, 150))
	assert.Zero(t, GCD())
}
