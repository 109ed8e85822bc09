package mrp

import (
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// 💎 Value is a typed capture result. Text always holds the lexeme exactly as
// it appeared in the input, so an int captured from "007" formats back as
// "007". Int holds the numeric value for TypeInt captures; when the digits do
// not fit in an int64, Overflow is set and Int is zero.
type Value struct {
	Type     CaptureType
	Text     string
	Int      int64
	Overflow bool
}

// String returns the original lexeme
func (v Value) String() string {
	return v.Text
}

// Str builds a str value
func Str(text string) Value {
	return Value{Type: TypeStr, Text: text}
}

// ParseInt builds an int value from a run of ASCII digits, keeping the digits
// verbatim as the value's text. Runs too long for an int64 are still valid.
func ParseInt(digits string) (Value, error) {
	if digits == "" {
		return Value{}, errors.New("empty int lexeme")
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return Value{}, errors.Errorf("invalid int lexeme %q", digits)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{Type: TypeInt, Text: digits, Overflow: true}, nil
		}
		return Value{}, errors.Errorf("parsing int lexeme %q: %w", digits, err)
	}
	return Value{Type: TypeInt, Text: digits, Int: n}, nil
}

// Bindings maps capture names to the values extracted from one input
type Bindings map[string]Value
