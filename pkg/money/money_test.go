package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{25, "$0.25"},
		{150, "$1.50"},
		{10000, "$100.00"},
		{-50, "-$0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.minor))
		})
	}
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "1.5", Decimal(150).String())
}
