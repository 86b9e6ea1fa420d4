package domain

// InputKind classifies the most recently accepted input.
// It is always derivable from the last character of the expression.
type InputKind string

const (
	InputNone     InputKind = "none"
	InputDigit    InputKind = "digit"
	InputDot      InputKind = "dot"
	InputOperator InputKind = "operator"
)

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsOperator reports whether c is one of the four binary operators.
func IsOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// KindOf classifies the last character of an expression.
func KindOf(expression string) InputKind {
	if expression == "" {
		return InputNone
	}
	c := expression[len(expression)-1]
	switch {
	case IsDigit(c):
		return InputDigit
	case c == '.':
		return InputDot
	case IsOperator(c):
		return InputOperator
	default:
		return InputNone
	}
}
