// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mrp

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Matcher extracts typed bindings from a whole input string. It is
// immutable and safe for concurrent use.
type Matcher struct {
	pattern Pattern
	types   map[string]CaptureType
}

// 🖨️ Formatter rebuilds an output string from bindings. It is immutable and
// safe for concurrent use.
type Formatter struct {
	template Template
}

// ⚙️ Compile turns a checked expression into its matcher and formatter
func Compile(c *CheckedExpression) (*Matcher, *Formatter) {
	m := &Matcher{
		pattern: append(Pattern(nil), c.expr.Pattern...),
		types:   make(map[string]CaptureType, len(c.types)),
	}
	for name, t := range c.types {
		m.types[name] = t
	}
	f := &Formatter{
		template: append(Template(nil), c.expr.Template...),
	}
	return m, f
}

// Pattern returns the segments the matcher walks
func (m *Matcher) Pattern() Pattern {
	return m.pattern
}

// Match walks the pattern left to right over input. It succeeds only when
// every segment matches and the whole input is consumed.
func (m *Matcher) Match(input string) (Bindings, bool) {
	b := make(Bindings, len(m.types))
	cur := 0

	for i, seg := range m.pattern {
		switch s := seg.(type) {
		case Literal:
			if !strings.HasPrefix(input[cur:], s.Text) {
				return nil, false
			}
			cur += len(s.Text)
		case Capture:
			end, ok := m.captureEnd(input, cur, i)
			if !ok {
				return nil, false
			}
			v, ok := newValue(s.Type, input[cur:end])
			if !ok {
				return nil, false
			}
			b[s.Name] = v
			cur = end
		}
	}

	if cur != len(input) {
		return nil, false
	}
	return b, true
}

// captureEnd finds where the capture at segment i, starting at start, stops.
// Int captures take the maximal digit run. Str captures take the shortest
// run, possibly empty, that ends at the first occurrence of the following
// literal, or run to the end of input when they are the last segment.
func (m *Matcher) captureEnd(input string, start, i int) (int, bool) {
	c := m.pattern[i].(Capture)

	switch c.Type {
	case TypeInt:
		end := start
		for end < len(input) && isDigit(input[end]) {
			end++
		}
		return end, end > start
	case TypeStr:
		if i+1 == len(m.pattern) {
			return len(input), true
		}
		anchor, ok := m.pattern[i+1].(Literal)
		if !ok {
			// unreachable for checked patterns
			return 0, false
		}
		idx := strings.Index(input[start:], anchor.Text)
		if idx < 0 {
			return 0, false
		}
		return start + idx, true
	}
	return 0, false
}

func newValue(t CaptureType, lexeme string) (Value, bool) {
	switch t {
	case TypeInt:
		v, err := ParseInt(lexeme)
		if err != nil {
			return Value{}, false
		}
		return v, true
	case TypeStr:
		return Str(lexeme), true
	}
	return Value{}, false
}

// Template returns the segments the formatter emits
func (f *Formatter) Template() Template {
	return f.template
}

// Format emits literals verbatim and replaces references with the original
// lexeme of the bound value.
func (f *Formatter) Format(b Bindings) (string, error) {
	var sb strings.Builder
	for _, seg := range f.template {
		switch s := seg.(type) {
		case Literal:
			sb.WriteString(s.Text)
		case Reference:
			v, ok := b[s.Name]
			if !ok {
				return "", errors.Errorf("no value bound for %q", s.Name)
			}
			sb.WriteString(v.Text)
		}
	}
	return sb.String(), nil
}
