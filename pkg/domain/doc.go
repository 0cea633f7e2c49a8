/*
Package domain contains the core domain models of the vending machine.

It defines the entities the session state machine works with: Screens, the
Session snapshot, the Mailbox holding the pending user-facing message, the
Catalog and the denomination sets. This package is kept pure and free of
external dependencies like I/O or configuration files.

# Key Entities

  - Screen: One interactive page of the machine (MainMenu, AddFunds, PurchaseItem, ReturnChange).
  - Session: The single mutable snapshot (Screen, Balance, Message, ExitRequested).
  - Mailbox: A size-one queue for the message shown on the next render.
  - Catalog: Ordered items with prices in minor currency units.
*/
package domain
