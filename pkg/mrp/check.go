package mrp

// ✅ CheckedExpression is an Expression that passed semantic checks. It is the
// only input accepted by Compile.
type CheckedExpression struct {
	expr  *Expression
	types map[string]CaptureType
}

// Expression returns the underlying parsed expression
func (c *CheckedExpression) Expression() *Expression {
	return c.expr
}

// Type returns the declared type of a capture
func (c *CheckedExpression) Type(name string) (CaptureType, bool) {
	t, ok := c.types[name]
	return t, ok
}

// 🔍 Check validates capture uniqueness, capture adjacency and that every
// template reference resolves to a capture.
func Check(expr *Expression) (*CheckedExpression, error) {
	types := make(map[string]CaptureType)
	firstPos := make(map[string]int)
	var declared []string

	for _, c := range expr.Pattern.Captures() {
		if pos, dup := firstPos[c.Name]; dup {
			return nil, &DuplicateCaptureError{Name: c.Name, Pos: c.Pos, FirstPos: pos}
		}
		firstPos[c.Name] = c.Pos
		types[c.Name] = c.Type
		declared = append(declared, c.Name)
	}

	if err := checkAdjacency(expr.Pattern); err != nil {
		return nil, err
	}

	for _, seg := range expr.Template {
		ref, ok := seg.(Reference)
		if !ok {
			continue
		}
		if _, ok := types[ref.Name]; !ok {
			return nil, &UndefinedReferenceError{Name: ref.Name, Pos: ref.Pos, Declared: declared}
		}
	}

	return &CheckedExpression{expr: expr, types: types}, nil
}

// checkAdjacency rejects capture pairs with no literal between them whose
// boundary cannot be found: a str capture followed by any capture, or two int
// captures in a row.
func checkAdjacency(p Pattern) error {
	for i := 0; i+1 < len(p); i++ {
		cur, ok := p[i].(Capture)
		if !ok {
			continue
		}
		next, ok := p[i+1].(Capture)
		if !ok {
			continue
		}
		if cur.Type == TypeStr || next.Type == TypeInt {
			return &AmbiguousCaptureError{Name: cur.Name, Next: next.Name, Pos: next.Pos}
		}
	}
	return nil
}
