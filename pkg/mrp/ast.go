package mrp

import "strings"

// 🔢 CaptureType is the closed set of value types a capture can extract
type CaptureType int

const (
	TypeStr CaptureType = iota // any text, possibly empty, bounded by the next literal
	TypeInt                    // one or more ASCII digits
)

// String returns the type name as written in expressions
func (t CaptureType) String() string {
	switch t {
	case TypeInt:
		return "int"
	default:
		return "str"
	}
}

// LookupType resolves a type name written after ':' in a capture
func LookupType(name string) (CaptureType, bool) {
	switch name {
	case "int":
		return TypeInt, true
	case "str":
		return TypeStr, true
	default:
		return 0, false
	}
}

// PatternSegment is either a Literal or a Capture
type PatternSegment interface {
	patternSegment()
}

// TemplateSegment is either a Literal or a Reference
type TemplateSegment interface {
	templateSegment()
}

// Literal is text matched or emitted byte for byte
type Literal struct {
	Text string
	Pos  int
}

// Capture declares a named, typed placeholder in a pattern
type Capture struct {
	Name string
	Type CaptureType
	Pos  int
}

// Reference re-inserts a captured value in a template
type Reference struct {
	Name string
	Pos  int
}

func (Literal) patternSegment()    {}
func (Literal) templateSegment()   {}
func (Capture) patternSegment()    {}
func (Reference) templateSegment() {}

// Pattern is the ordered segment sequence left of "->"
type Pattern []PatternSegment

// Template is the ordered segment sequence right of "->"
type Template []TemplateSegment

// Captures returns the captures of the pattern in declaration order
func (p Pattern) Captures() []Capture {
	var out []Capture
	for _, seg := range p {
		if c, ok := seg.(Capture); ok {
			out = append(out, c)
		}
	}
	return out
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, seg := range p {
		switch s := seg.(type) {
		case Literal:
			sb.WriteString(s.Text)
		case Capture:
			sb.WriteString("(" + s.Name + ":" + s.Type.String() + ")")
		}
	}
	return sb.String()
}

func (t Template) String() string {
	var sb strings.Builder
	for _, seg := range t {
		switch s := seg.(type) {
		case Literal:
			sb.WriteString(s.Text)
		case Reference:
			sb.WriteString("(" + s.Name + ")")
		}
	}
	return sb.String()
}

// 📜 Expression is a parsed, not yet checked, pattern/template pair
type Expression struct {
	Source   string
	Pattern  Pattern
	Template Template
}

func (e *Expression) String() string {
	return e.Pattern.String() + arrow + e.Template.String()
}
