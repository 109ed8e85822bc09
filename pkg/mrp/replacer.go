package mrp

import (
	"gitlab.com/tozd/go/errors"
)

// 🔄 Replacer pairs a compiled matcher and formatter behind the Apply contract
// used by the rename executor.
type Replacer struct {
	source    string
	checked   *CheckedExpression
	matcher   *Matcher
	formatter *Formatter
}

// 🏭 New runs the full pipeline (lex, parse, check, compile) over expr.
// Errors are returned unwrapped so callers can errors.As them into the typed
// compile errors of this package.
func New(expr string) (*Replacer, error) {
	parsed, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	checked, err := Check(parsed)
	if err != nil {
		return nil, err
	}
	m, f := Compile(checked)
	return &Replacer{source: expr, checked: checked, matcher: m, formatter: f}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed expressions.
func MustNew(expr string) *Replacer {
	r, err := New(expr)
	if err != nil {
		panic(errors.Errorf("compiling %q: %w", expr, err))
	}
	return r
}

// Apply matches name and formats the replacement. The bool is false when the
// name does not match the pattern.
func (r *Replacer) Apply(name string) (string, bool) {
	b, ok := r.matcher.Match(name)
	if !ok {
		return "", false
	}
	out, err := r.formatter.Format(b)
	if err != nil {
		// checked templates only reference declared captures
		return "", false
	}
	return out, true
}

// Matcher returns the compiled pattern
func (r *Replacer) Matcher() *Matcher { return r.matcher }

// Formatter returns the compiled template
func (r *Replacer) Formatter() *Formatter { return r.formatter }

// Expression returns the checked expression the replacer was built from
func (r *Replacer) Expression() *CheckedExpression { return r.checked }

func (r *Replacer) String() string { return r.source }
