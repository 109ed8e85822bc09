package text

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// RegexReplacer renames with a regular expression and a replacement template.
// The replacement uses $1 and ${name} expansion.
type RegexReplacer struct {
	re          *regexp.Regexp
	replacement string
}

// NewRegexReplacer compiles pattern and pairs it with replacement
func NewRegexReplacer(pattern, replacement string) (*RegexReplacer, error) {
	if pattern == "" {
		return nil, errors.Errorf("pattern is required")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", pattern, err)
	}
	if err := validateReferences(re, replacement); err != nil {
		return nil, err
	}
	return &RegexReplacer{re: re, replacement: replacement}, nil
}

// Apply replaces every match of the pattern in name.
// Names that do not match return false.
func (r *RegexReplacer) Apply(name string) (string, bool) {
	if !r.re.MatchString(name) {
		return name, false
	}
	return r.re.ReplaceAllString(name, r.replacement), true
}

func (r *RegexReplacer) String() string {
	return r.re.String() + " -> " + r.replacement
}

// validateReferences rejects ${name} references to groups the pattern does not define
func validateReferences(re *regexp.Regexp, replacement string) error {
	names := make(map[string]bool)
	for _, n := range re.SubexpNames() {
		if n != "" {
			names[n] = true
		}
	}

	for _, m := range namedRef.FindAllStringSubmatch(replacement, -1) {
		if !names[m[1]] {
			return errors.Errorf("replacement references unknown group %q", m[1])
		}
	}
	return nil
}

var namedRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)
