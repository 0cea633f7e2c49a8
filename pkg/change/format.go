package change

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/money"
)

// Banner brackets the returned-change listing.
const Banner = "~~~ CHANGE RETURNED ~~~"

// Format renders the non-zero entries of b, one "$D.DD -> N" line each, between two banners.
// The output starts with a blank line.
func Format(b Breakdown) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Banner)
	sb.WriteString("\n")
	for _, c := range b.Coins {
		if c.Count > 0 {
			fmt.Fprintf(&sb, "%s -> %d\n", money.Format(c.Denomination), c.Count)
		}
	}
	if b.Remainder > 0 {
		fmt.Fprintf(&sb, "Undistributable remainder: %s\n", money.Format(b.Remainder))
	}
	sb.WriteString(Banner)
	return sb.String()
}
