/*
Package domain contains the core domain models of the Tally calculator.

It defines the snapshot of a calculator session, the discrete input events a
presentation layer may send, and the render-ready view produced after every
event. This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: The serializable snapshot of a session (Expression, last input kind, failed confirm).
  - Event: A discrete input (digit, dot, operator, backspace, clear, equals).
  - DisplayState: What the host should show (expression text and result text).
  - LifecycleHooks: Callbacks fired as events are applied and expressions evaluated.
*/
package domain
