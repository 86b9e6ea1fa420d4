package evaluator

import (
	"math"
	"strings"
	"unicode"
)

// Evaluate computes the value of an arithmetic expression.
//
// Every '%' is first rewritten to "/100". The result must then consist only of digits,
// '+', '-', '*', '/', '(', ')', '.' and whitespace. Empty text evaluates to 0.
// Errors always match domain.ErrEvaluation and one of this package's sentinels.
func Evaluate(text string) (float64, error) {
	if text == "" {
		return 0, nil
	}

	text = strings.ReplaceAll(text, "%", "/100")
	if err := validate(text); err != nil {
		return 0, err
	}

	tokens, err := tokenize(text)
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	v, err := p.parse()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fail(ErrNonFinite, len(text), "result is not a finite number")
	}
	return v, nil
}

const alphabet = "0123456789+-*/()."

// validate rejects any character outside the arithmetic alphabet.
func validate(text string) error {
	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if strings.ContainsRune(alphabet, r) {
			continue
		}
		return fail(ErrInvalidCharacter, i, "character %q is not allowed", r)
	}
	return nil
}
