package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vending/pkg/domain"
)

func TestCatalogMarkdown(t *testing.T) {
	m := domain.Machine{
		Funding: domain.Denominations{25, 100},
		Change:  domain.Denominations{25},
		Catalog: domain.Catalog{{Name: "Chips", Price: 150}, {Name: "A|B", Price: 5}},
	}

	got := CatalogMarkdown(m)
	assert.Contains(t, got, "| 0 | Chips | $1.50 |")
	assert.Contains(t, got, "| 1 | A\\|B | $0.05 |")
	assert.Contains(t, got, "| 1 | $1.00 |")
	assert.Contains(t, got, "## Change Returned In\n\n$0.25\n")
}

func TestHighlighter_PlainWriterLeavesTextAlone(t *testing.T) {
	// A bytes.Buffer is not a terminal, so termenv picks the Ascii profile.
	render := NewHighlighter(&bytes.Buffer{})

	in := "Invalid input given. abc is not a valid input\nother line"
	out, err := render(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}
