/*
Package change computes the coins handed back to the user.

The Calculator applies a greedy largest-first reduction over a fixed set of
change denominations. Greedy selection is exact only for canonical
denomination sets; for other sets the reduction can stop with a leftover that
no denomination fits. That leftover is reported in Breakdown.Remainder and is
never redistributed by a different algorithm. Use Calculator.Verify to check a
set offline against the balances a machine can reach.
*/
package change
