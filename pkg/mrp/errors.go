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
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"
)

// Positioned is implemented by every compile error; Position is the byte
// offset in the expression the error points at.
type Positioned interface {
	error
	Position() int
}

// 🔤 LexError reports a character that is not allowed inside a capture group
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q inside capture group", e.Char)
}

func (e *LexError) Position() int { return e.Pos }

// 🧩 ParseError reports a token that does not fit the grammar
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, but found %s", e.Expected, e.Found)
}

func (e *ParseError) Position() int { return e.Pos }

// DuplicateCaptureError reports a capture name declared twice in a pattern
type DuplicateCaptureError struct {
	Name     string
	Pos      int
	FirstPos int
}

func (e *DuplicateCaptureError) Error() string {
	return fmt.Sprintf("duplicate capture %q (first declared at column %d)", e.Name, e.FirstPos)
}

func (e *DuplicateCaptureError) Position() int { return e.Pos }

// UndefinedReferenceError reports a template reference with no matching capture
type UndefinedReferenceError struct {
	Name     string
	Pos      int
	Declared []string
}

func (e *UndefinedReferenceError) Error() string {
	if len(e.Declared) == 0 {
		return fmt.Sprintf("undeclared identifier %q; no captures declared", e.Name)
	}
	return fmt.Sprintf("undeclared identifier %q; declared: %s", e.Name, strings.Join(e.Declared, ", "))
}

func (e *UndefinedReferenceError) Position() int { return e.Pos }

// AmbiguousCaptureError reports a capture whose end cannot be determined
// because it is directly followed by another capture.
type AmbiguousCaptureError struct {
	Name string
	Next string
	Pos  int
}

func (e *AmbiguousCaptureError) Error() string {
	return fmt.Sprintf("capture %q is directly followed by capture %q; separate them with literal text", e.Name, e.Next)
}

func (e *AmbiguousCaptureError) Position() int { return e.Pos }

// 🎨 Diagnostic renders err against the expression it came from: the input on
// one line and an arrow under the offending column on the next. Errors that
// carry no position are rendered as is.
func Diagnostic(input string, err error) string {
	var perr Positioned
	if !errors.As(err, &perr) {
		return err.Error()
	}

	var sb strings.Builder
	sb.WriteString(color.New(color.FgYellow).Sprint(input))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", perr.Position()))
	fmt.Fprintf(&sb, "%s %s:%s %s",
		color.New(color.FgRed, color.Bold).Sprint("↳"),
		color.New(color.FgRed, color.Bold).Sprint("@col"),
		color.New(color.Bold).Sprint(perr.Position()),
		perr.Error())
	return sb.String()
}
