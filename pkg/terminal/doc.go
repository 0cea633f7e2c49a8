/*
Package terminal provides the text collaborator that drives a vending session
from an io.Reader and io.Writer pair, typically os.Stdin and os.Stdout.

Reads are blocking and line based. Every line is sanitised before it reaches
the engine: oversized input and invalid UTF-8 are refused, and control
characters are stripped.
*/
package terminal
