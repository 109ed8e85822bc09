package mrp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestCheck(t *testing.T) {
	expr, err := Parse("g-(g:int)-a-(a)->artist-(a)-genre-(g)")
	require.NoError(t, err)

	checked, err := Check(expr)
	require.NoError(t, err)
	assert.Same(t, expr, checked.Expression())

	typ, ok := checked.Type("g")
	require.True(t, ok)
	assert.Equal(t, TypeInt, typ)

	typ, ok = checked.Type("a")
	require.True(t, ok)
	assert.Equal(t, TypeStr, typ)

	_, ok = checked.Type("missing")
	assert.False(t, ok)
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "duplicate_capture",
			input: "(a)-(a)->(a)",
			check: func(t *testing.T, err error) {
				var dup *DuplicateCaptureError
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, "a", dup.Name)
				assert.Equal(t, 4, dup.Pos)
				assert.Equal(t, 0, dup.FirstPos)
			},
		},
		{
			name:  "duplicate_capture_with_different_types",
			input: "(n:int)_(n:str)->(n)",
			check: func(t *testing.T, err error) {
				var dup *DuplicateCaptureError
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, "n", dup.Name)
			},
		},
		{
			name:  "undefined_reference",
			input: "file(n:int)->(m)out.txt",
			check: func(t *testing.T, err error) {
				var undef *UndefinedReferenceError
				require.True(t, errors.As(err, &undef))
				assert.Equal(t, "m", undef.Name)
				assert.Equal(t, 13, undef.Pos)
				assert.Equal(t, []string{"n"}, undef.Declared)
				assert.Contains(t, undef.Error(), "declared: n")
			},
		},
		{
			name:  "undefined_reference_without_captures",
			input: "a->(n)",
			check: func(t *testing.T, err error) {
				var undef *UndefinedReferenceError
				require.True(t, errors.As(err, &undef))
				assert.Equal(t, 3, undef.Pos)
				assert.Empty(t, undef.Declared)
			},
		},
		{
			name:  "str_followed_by_capture",
			input: "(a)(b:int)->(a)",
			check: func(t *testing.T, err error) {
				var amb *AmbiguousCaptureError
				require.True(t, errors.As(err, &amb))
				assert.Equal(t, "a", amb.Name)
				assert.Equal(t, "b", amb.Next)
				assert.Equal(t, 3, amb.Pos)
			},
		},
		{
			name:  "int_followed_by_int",
			input: "(a:int)(b:int)->(a)",
			check: func(t *testing.T, err error) {
				var amb *AmbiguousCaptureError
				require.True(t, errors.As(err, &amb))
				assert.Equal(t, 7, amb.Pos)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)

			_, err = Check(expr)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCheckAllowsIntFollowedByStr(t *testing.T) {
	expr, err := Parse("(n:int)(rest)->(rest)(n)")
	require.NoError(t, err)

	_, err = Check(expr)
	require.NoError(t, err)
}
