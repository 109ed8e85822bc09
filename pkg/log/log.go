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

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/rnm/pkg/operation"
	"github.com/walteh/rnm/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 Batch describes a rename batch for the console header
type Batch struct {
	Label      string // rule name or command
	Expression string // expression or regex shown to the user
	DryRun     bool   // whether renames are only planned
	Paths      int    // number of input paths
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog     zerolog.Logger
	console  io.Writer
	mu       sync.Mutex
	current  *Batch
	outcomes int
}

// 🏭 New creates a new logger writing user output to console and mirroring it to zlog
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 StartBatch prints the batch header
func (l *Logger) StartBatch(ctx context.Context, b Batch) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &b
	l.outcomes = 0

	mode := "live"
	if b.DryRun {
		mode = "dry run"
	}

	fmt.Fprintf(l.console, "[renaming %s]\n",
		color.New(color.FgCyan).Sprint(b.Label))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(b.Expression),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(mode))

	l.zlog.Info().
		Str("label", b.Label).
		Str("expression", b.Expression).
		Bool("dry_run", b.DryRun).
		Int("paths", b.Paths).
		Msg("starting rename batch")
}

// 📝 LogOutcome prints one outcome line
func (l *Logger) LogOutcome(ctx context.Context, o operation.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.outcomes++

	line := status.FormatOutcomeLine(o.Source, o.Destination, o.Status, o.Reason)
	if o.Reason == status.ReasonIO && o.Err != nil {
		line += color.New(color.Faint).Sprint(": " + o.Err.Error())
	}
	fmt.Fprintln(l.console, line)

	ev := l.zlog.Info()
	if o.Status == status.StatusFailed {
		ev = l.zlog.Warn()
	}
	ev.Str("from", o.Source).
		Str("to", o.Destination).
		Stringer("status", o.Status).
		Stringer("reason", o.Reason).
		Err(o.Err).
		Msg("rename outcome")
}

// 📝 EndBatch prints the summary table for the report
func (l *Logger) EndBatch(ctx context.Context, report *operation.Report) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	table, err := SummaryTable(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(l.console)
	fmt.Fprint(l.console, table)

	label := ""
	if l.current != nil {
		label = l.current.Label
	}
	l.zlog.Info().
		Str("label", label).
		Str("batch", report.BatchID).
		Int("outcomes", l.outcomes).
		Int("renamed", report.Count(status.StatusRenamed)).
		Int("planned", report.Count(status.StatusPlanned)).
		Int("skipped", report.Count(status.StatusSkipped)).
		Int("failed", report.Count(status.StatusFailed)).
		Msg("rename batch complete")

	l.current = nil
	l.outcomes = 0
	return nil
}

// 📊 SummaryTable renders the outcome counts of a report as a table
func SummaryTable(report *operation.Report) (string, error) {
	data := pterm.TableData{
		{"renamed", "planned", "skipped", "failed", "total"},
		{
			strconv.Itoa(report.Count(status.StatusRenamed)),
			strconv.Itoa(report.Count(status.StatusPlanned)),
			strconv.Itoa(report.Count(status.StatusSkipped)),
			strconv.Itoa(report.Count(status.StatusFailed)),
			strconv.Itoa(len(report.Outcomes)),
		},
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out + "\n", nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rnmText := color.New(color.Bold, color.FgCyan).Sprint("rnm")
	fmt.Fprintf(l.console, "\n%s %s\n\n", rnmText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Print writes msg to the console as is
func (l *Logger) Print(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
