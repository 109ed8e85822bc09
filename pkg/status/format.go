package status

import (
	"fmt"
)

// FileFormatter defines how rename outcomes and progress are rendered as text
type FileFormatter interface {
	// FormatOutcome formats one rename outcome
	FormatOutcome(from, to string, status Status, reason Reason, err error) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatOutcome formats a rename outcome with emojis
func (f *DefaultFileFormatter) FormatOutcome(from, to string, status Status, reason Reason, err error) string {
	switch status {
	case StatusRenamed:
		return fmt.Sprintf("✨ Renamed %s -> %s", from, to)
	case StatusPlanned:
		return fmt.Sprintf("📝 Would rename %s -> %s", from, to)
	case StatusFailed:
		msg := fmt.Sprintf("❌ Failed %s", from)
		if to != "" {
			msg += " -> " + to
		}
		msg += fmt.Sprintf(" (%s)", reason)
		if err != nil {
			msg += ": " + err.Error()
		}
		return msg
	default:
		return fmt.Sprintf("👍 Skipped %s (%s)", from, reason)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
