package evaluator

import (
	"math"
	"strconv"
)

// maxDepth bounds nesting of parentheses and unary signs.
const maxDepth = 256

// parser is a recursive-descent evaluator over a token slice:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := number | '(' expr ')'
type parser struct {
	tokens []token
	pos    int
	depth  int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parse() (float64, error) {
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, fail(ErrSyntax, t.offset, "unexpected %s", t.kind)
	}
	return v, nil
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.kind != tokPlus && op.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op.kind == tokPlus {
			left += right
		} else {
			left -= right
		}
		if math.IsInf(left, 0) || math.IsNaN(left) {
			return 0, fail(ErrNonFinite, op.offset, "overflow")
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.kind != tokStar && op.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op.kind == tokStar {
			left *= right
		} else {
			if right == 0 {
				return 0, fail(ErrDivisionByZero, op.offset, "divisor is zero")
			}
			left /= right
		}
		if math.IsInf(left, 0) || math.IsNaN(left) {
			return 0, fail(ErrNonFinite, op.offset, "overflow")
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	t := p.peek()
	if t.kind != tokPlus && t.kind != tokMinus {
		return p.parsePrimary()
	}
	if err := p.enter(t); err != nil {
		return 0, err
	}
	defer p.leave()

	p.next()
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if t.kind == tokMinus {
		return -v, nil
	}
	return v, nil
}

func (p *parser) parsePrimary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			// Only range errors are possible on scanned literals.
			return 0, fail(ErrNonFinite, t.offset, "literal %s out of range", t.text)
		}
		return v, nil

	case tokLParen:
		if err := p.enter(t); err != nil {
			return 0, err
		}
		defer p.leave()

		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return 0, fail(ErrSyntax, closing.offset, "expected ')' but found %s", closing.kind)
		}
		return v, nil

	default:
		return 0, fail(ErrSyntax, t.offset, "expected operand but found %s", t.kind)
	}
}

func (p *parser) enter(t token) error {
	p.depth++
	if p.depth > maxDepth {
		return fail(ErrSyntax, t.offset, "nesting deeper than %d", maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}
