/*
Package vending is an interactive, text-driven vending-machine simulator.

A single session accumulates stored value, lets the user buy items against that
balance and hands back change in coins. The session is a small state machine
over four screens (Main Menu, Add Funds, Purchase Item, Return Change); change
is computed with a greedy largest-first reduction over a fixed denomination set.

# Concept

The Engine owns the session and the screen logic. The host supplies a Terminal:
something that prints pre-rendered text and reads one line of input at a time.
The default terminal reads Stdin and writes Stdout, but any implementation of
ports.Terminal works, which keeps the machine easy to embed and to test.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/vending"
	)

	func main() {
		// Stock machine on Stdin/Stdout.
		eng, err := vending.New()
		if err != nil {
			log.Fatal(err)
		}

		// Blocks until the user enters "x" or input ends.
		if err := eng.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package vending
