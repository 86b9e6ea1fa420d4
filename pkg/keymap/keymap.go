// Package keymap translates raw key names into calculator input events.
// The mapping is a passthrough and carries no engine logic.
package keymap

import (
	"fmt"
	"strings"

	"github.com/aretw0/tally/pkg/domain"
)

// Binding describes one key binding for help output.
type Binding struct {
	Keys        []string
	Description string
}

var aliases = map[string]domain.Event{
	"Enter":     domain.Equals(),
	"enter":     domain.Equals(),
	"=":         domain.Equals(),
	"Backspace": domain.Backspace(),
	"backspace": domain.Backspace(),
	"ctrl+h":    domain.Backspace(),
	"Delete":    domain.Backspace(),
	"delete":    domain.Backspace(),
	"c":         domain.Clear(),
	"C":         domain.Clear(),
	"Escape":    domain.Clear(),
	"Esc":       domain.Clear(),
	"esc":       domain.Clear(),
	".":         domain.Dot(),
}

// Translate maps a key name to an input event.
func Translate(key string) (domain.Event, error) {
	if ev, ok := aliases[key]; ok {
		return ev, nil
	}
	if len(key) == 1 {
		switch c := key[0]; {
		case domain.IsDigit(c):
			return domain.Digit(c), nil
		case domain.IsOperator(c):
			return domain.Operator(c), nil
		}
	}
	return domain.Event{}, fmt.Errorf("%w: %q", domain.ErrUnknownKey, key)
}

// Split turns a free text line into key names.
// A whitespace-separated word naming a key ("Backspace", "Enter", "esc") is one key;
// any other word is one key per rune, so "1 + 2 =" and "1+2=" are the same keystrokes.
func Split(line string) []string {
	keys := make([]string, 0, len(line))
	for _, word := range strings.Fields(line) {
		if _, ok := aliases[word]; ok {
			keys = append(keys, word)
			continue
		}
		for _, r := range word {
			keys = append(keys, string(r))
		}
	}
	return keys
}

// Bindings lists the bindings in display order.
func Bindings() []Binding {
	return []Binding{
		{Keys: []string{"0", "…", "9"}, Description: "Append a digit"},
		{Keys: []string{"."}, Description: "Start the decimal part of the current number"},
		{Keys: []string{"+", "-", "*", "/"}, Description: "Append an operator, replacing a trailing one"},
		{Keys: []string{"Enter", "="}, Description: "Evaluate and replace the expression with the result"},
		{Keys: []string{"Backspace", "Delete"}, Description: "Remove the last character"},
		{Keys: []string{"c", "C", "Esc"}, Description: "Clear the expression"},
	}
}

// Markdown renders the bindings as a markdown table.
func Markdown() string {
	var b strings.Builder
	b.WriteString("# Key bindings\n\n")
	b.WriteString("| Keys | Action |\n")
	b.WriteString("|------|--------|\n")
	for _, binding := range Bindings() {
		quoted := make([]string, len(binding.Keys))
		for i, k := range binding.Keys {
			if k == "…" {
				quoted[i] = k
				continue
			}
			quoted[i] = "`" + k + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", strings.Join(quoted, " "), binding.Description)
	}
	return b.String()
}
