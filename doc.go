/*
Package tally is a keystroke-driven calculator engine.

It maintains a textual arithmetic expression built from discrete input events
(digits, decimal point, operators, backspace, clear, equals), evaluates it with a
validated recursive-descent parser and produces a render-ready view after every event.

# Concept

The engine is stateless: every session is a small serializable domain.State and the
engine applies events to it, returning a new state. This Hexagonal Architecture lets the
same core drive a terminal UI, a line-mode REPL, an HTTP API or an MCP tool server,
with session state kept in memory or in Redis.

# Key Features

  - Editing invariants: one decimal point per operand, operator replacement, leading negatives.
  - Safe evaluation: no dynamic code execution; invalid characters are rejected up front.
  - Stable display: results are rounded to 6 decimal places and printed without exponents.
  - Observability: lifecycle hooks for inputs and evaluations.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/tally"
	)

	func main() {
		eng := tally.New()
		ctx := context.Background()

		state, err := eng.Press(ctx, eng.Start(), "2", "*", "2", "1", "Enter")
		if err != nil {
			log.Fatal(err)
		}

		view := eng.Render(ctx, state)
		fmt.Println(view.Expression) // 42
	}
*/
package tally
