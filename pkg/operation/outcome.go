package operation

import (
	"github.com/walteh/rnm/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📋 Outcome records what happened to one input path
type Outcome struct {
	// Index is the position of Source in the batch input
	Index int
	// Source is the path as given
	Source string
	// Destination is the computed target, empty when the name did not match
	Destination string
	Status      status.Status
	Reason      status.Reason
	// Err is set for failed outcomes
	Err error
}

// Format renders the outcome with the given formatter
func (o Outcome) Format(f status.FileFormatter) string {
	return f.FormatOutcome(o.Source, o.Destination, o.Status, o.Reason, o.Err)
}

// 📊 Report is the ordered result of a batch, one outcome per input path
type Report struct {
	// BatchID identifies the batch in logs
	BatchID string
	// DryRun is true when no rename was performed
	DryRun bool
	// FailOnNoMatch counts unmatched paths as failures in Err
	FailOnNoMatch bool
	// Groups is the number of path groups processed
	Groups int
	// Workers is the number of groups processed concurrently
	Workers int
	// Outcomes are in input order
	Outcomes []Outcome
}

// Count returns the number of outcomes with the given status
func (r *Report) Count(s status.Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// CountReason returns the number of outcomes with the given reason
func (r *Report) CountReason(reason status.Reason) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Reason == reason {
			n++
		}
	}
	return n
}

// Failed returns the failed outcomes in input order
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == status.StatusFailed {
			out = append(out, o)
		}
	}
	return out
}

// HasFailures reports whether any outcome failed
func (r *Report) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Status == status.StatusFailed {
			return true
		}
	}
	return false
}

// Err returns an error wrapping ErrBatchFailed when the batch did not succeed
func (r *Report) Err() error {
	failed := r.Count(status.StatusFailed)
	if r.FailOnNoMatch {
		failed += r.CountReason(status.ReasonNoMatch)
	}
	if failed == 0 {
		return nil
	}
	return errors.Errorf("%d of %d paths: %w", failed, len(r.Outcomes), ErrBatchFailed)
}
