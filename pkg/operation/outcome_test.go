package operation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rnm/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestReportErr(t *testing.T) {
	tests := []struct {
		name          string
		outcomes      []Outcome
		failOnNoMatch bool
		wantErr       bool
	}{
		{
			name:     "all_renamed",
			outcomes: []Outcome{{Status: status.StatusRenamed}, {Status: status.StatusPlanned}},
		},
		{
			name:     "no_match_is_fine_by_default",
			outcomes: []Outcome{{Status: status.StatusSkipped, Reason: status.ReasonNoMatch}},
		},
		{
			name:          "no_match_fails_in_strict_mode",
			outcomes:      []Outcome{{Status: status.StatusSkipped, Reason: status.ReasonNoMatch}},
			failOnNoMatch: true,
			wantErr:       true,
		},
		{
			name:          "unchanged_is_fine_in_strict_mode",
			outcomes:      []Outcome{{Status: status.StatusSkipped, Reason: status.ReasonUnchanged}},
			failOnNoMatch: true,
		},
		{
			name:     "failure",
			outcomes: []Outcome{{Status: status.StatusRenamed}, {Status: status.StatusFailed, Reason: status.ReasonIO}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{Outcomes: tt.outcomes, FailOnNoMatch: tt.failOnNoMatch}
			err := report.Err()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBatchFailed))
		})
	}
}

func TestReportCounts(t *testing.T) {
	report := &Report{Outcomes: []Outcome{
		{Status: status.StatusRenamed},
		{Status: status.StatusRenamed},
		{Status: status.StatusSkipped, Reason: status.ReasonNoMatch},
		{Status: status.StatusFailed, Reason: status.ReasonDestinationConflict},
	}}

	assert.Equal(t, 2, report.Count(status.StatusRenamed))
	assert.Equal(t, 1, report.Count(status.StatusSkipped))
	assert.Equal(t, 1, report.CountReason(status.ReasonNoMatch))
	assert.True(t, report.HasFailures())
	assert.Len(t, report.Failed(), 1)
}

func TestGroupByDir(t *testing.T) {
	groups := GroupByDir([]string{"a/1", "b/1", "a/2", "./a/3", "c", "b/2"})

	require.Len(t, groups, 3)
	assert.Equal(t, "a", groups[0].Dir)
	assert.Equal(t, []string{"a/1", "a/2", "./a/3"}, groups[0].Paths)
	assert.Equal(t, []int{0, 2, 3}, groups[0].index)
	assert.Equal(t, "b", groups[1].Dir)
	assert.Equal(t, []string{"b/1", "b/2"}, groups[1].Paths)
	assert.Equal(t, ".", groups[2].Dir)
	assert.Equal(t, []string{"c"}, groups[2].Paths)
}

func TestGroupByDirResolvesSpellings(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	groups := GroupByDir([]string{"d/a1", filepath.Join(cwd, "d", "a2"), "./d/../d/a3", "e/a4"})

	require.Len(t, groups, 2)
	assert.Equal(t, "d", groups[0].Dir)
	assert.Equal(t, []int{0, 1, 2}, groups[0].index)
	assert.Equal(t, []int{3}, groups[1].index)
}
