/*
Package ports defines the driven ports (interfaces) for the vending machine.

These interfaces decouple the session state machine from the terminal it talks
to, so the same engine can be driven by a real console, a scripted test
terminal, or any other line-oriented frontend.

# Key Interfaces

  - Terminal: Line-based input and pre-rendered text output.
*/
package ports
