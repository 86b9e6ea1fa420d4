package domain

// ResultError is the result text shown after an explicit confirmation fails.
const ResultError = "Error"

// DisplayState is the render-ready view of a session.
type DisplayState struct {
	// Expression is the current expression, or "0" when it is empty.
	Expression string `json:"expression"`
	// Result is the formatted live value, "" when the expression is not evaluable,
	// or ResultError after a failed confirmation.
	Result string `json:"result"`
}
