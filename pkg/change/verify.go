package change

// Verify checks the greedy reduction against every positive multiple of step.
// It returns the smallest such amount left with a remainder, and false; or 0
// and true when every multiple reduces exactly.
//
// Greedy takes as many of the largest denomination L as fit, so an amount
// behaves like itself modulo L. Multiples of step repeat modulo L after
// L/gcd(step, L) steps, which bounds the search.
func (c *Calculator) Verify(step int64) (int64, bool) {
	if step <= 0 {
		return 0, true
	}
	largest := c.denominations[0]
	period := largest / gcd(step, largest)

	for k := int64(1); k <= period; k++ {
		amount := k * step
		if c.Compute(amount).Remainder != 0 {
			return amount, false
		}
	}
	return 0, true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// GCD returns the greatest common divisor of all values, or 0 for an empty list.
func GCD(values ...int64) int64 {
	var g int64
	for _, v := range values {
		g = gcd(g, v)
	}
	return g
}
