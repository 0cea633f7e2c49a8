package vending_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/testutils"
)

// ExampleNew drives the stock machine with scripted input:
// insert two dollars, buy Chips, and take the change.
func ExampleNew() {
	term := testutils.NewScriptedTerminal("0", "4", "b", "1", "1", "y", "x")

	eng, err := vending.New(vending.WithTerminal(term))
	if err != nil {
		log.Fatal(err)
	}

	if err := eng.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

	for _, line := range term.Printed {
		if line != "" {
			fmt.Println(line)
		}
	}
	fmt.Println("balance:", eng.Session().Balance)

	// Output:
	// Purchased Chips for $1.50
	// There is $0.50 remaining in the machine
	//
	// ~~~ CHANGE RETURNED ~~~
	// $0.25 -> 2
	// ~~~ CHANGE RETURNED ~~~
	// balance: 0
}
