package boolexpr

type parseOptions struct {
	legacyDepthTracking bool
}

type ParseOption func(*parseOptions)

// WithLegacyDepthTracking makes the parser count both '(' and ')' as going
// one level deeper, so nesting depth never decreases inside a group. With
// this option a top-level operator is only found when it comes before the
// first parenthesis of the group, e.g. "(Av(B^C))" parses but "((A^B)vC)"
// does not. A '!' that is the first top-level operator negates the rest of
// the group and anything before it is ignored, so "(A!B)" parses as "(!B)".
// Without this option that input is a MalformedExpressionError.
func WithLegacyDepthTracking() ParseOption {
	return func(o *parseOptions) {
		o.legacyDepthTracking = true
	}
}

type parser struct {
	text string
	parseOptions
}

// Parse converts a fully parenthesized expression into a tree.
//
// The grammar is
//
//	expr := letter | "(" "!" expr ")" | "(" expr binop expr ")" | "!" expr
//	binop := "^" | "v" | ">" | "=" | "+"
//
// An empty string returns a nil node and no error.
func Parse(text string, opts ...ParseOption) (Node, error) {
	if text == "" {
		return nil, nil
	}

	p := &parser{text: text}
	for _, opt := range opts {
		opt(&p.parseOptions)
	}
	return p.parse(0, len(text))
}

// parse builds the node for text[start:end].
func (p *parser) parse(start, end int) (Node, error) {
	switch end - start {
	case 0:
		return nil, p.errorAt(start, "missing operand")
	case 1:
		return NewVariable(p.text[start]), nil
	}

	if Operator(p.text[start]) == NOT {
		child, err := p.parse(start+1, end)
		if err != nil {
			return nil, err
		}
		return NewUnary(NOT, child), nil
	}

	if p.text[start] != '(' {
		return nil, p.errorAt(start, "expected '('")
	}
	if p.text[end-1] != ')' {
		return nil, p.errorAt(end-1, "expected ')'")
	}

	// the interior of the group, without the outermost parentheses
	lo, hi := start+1, end-1
	depth := 0
	for i := lo; i < hi; i++ {
		ch := p.text[i]
		switch {
		case ch == '(':
			depth++
		case ch == ')':
			if p.legacyDepthTracking {
				depth++
				continue
			}
			depth--
			if depth < 0 {
				return nil, p.errorAt(i, "unbalanced ')'")
			}
		case depth == 0 && isOperator(ch):
			return p.split(Operator(ch), lo, i, hi)
		}
	}

	if depth != 0 && !p.legacyDepthTracking {
		return nil, p.errorAt(hi, "unbalanced '('")
	}
	return nil, p.errorAt(lo, "no top-level operator")
}

// split builds the node for an operator found at position at of the group
// interior [lo, hi).
func (p *parser) split(op Operator, lo, at, hi int) (Node, error) {
	if op == NOT {
		// legacy parsing drops whatever comes before the '!'
		if at != lo && !p.legacyDepthTracking {
			return nil, p.errorAt(lo, "unexpected operand before '!'")
		}
		child, err := p.parse(at+1, hi)
		if err != nil {
			return nil, err
		}
		return NewUnary(NOT, child), nil
	}

	left, err := p.parse(lo, at)
	if err != nil {
		return nil, err
	}
	right, err := p.parse(at+1, hi)
	if err != nil {
		return nil, err
	}
	return NewBinary(op, left, right), nil
}

func (p *parser) errorAt(position int, reason string) error {
	return NewMalformedExpressionError(p.text, position, reason)
}
