package evaluator

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "unknown"
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

var punctuation = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

// tokenize splits validated text into tokens. Whitespace separates tokens and is dropped.
func tokenize(text string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		c := text[i]
		if kind, ok := punctuation[c]; ok {
			tokens = append(tokens, token{kind: kind, text: text[i : i+1], offset: i})
			i++
			continue
		}

		if c == '.' || isDigit(c) {
			start := i
			digits := 0
			for i < len(text) && isDigit(text[i]) {
				i++
				digits++
			}
			if i < len(text) && text[i] == '.' {
				i++
				for i < len(text) && isDigit(text[i]) {
					i++
					digits++
				}
			}
			if digits == 0 {
				return nil, fail(ErrSyntax, start, "decimal point without digits")
			}
			tokens = append(tokens, token{kind: tokNumber, text: text[start:i], offset: start})
			continue
		}

		return nil, fail(ErrInvalidCharacter, i, "unexpected %q", r)
	}
	tokens = append(tokens, token{kind: tokEOF, offset: len(text)})
	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
