package pagespec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBounds(t *testing.T) {
	cases := []struct {
		name  string
		seq   []int
		total int
		ok    bool
	}{
		{"full range", []int{0, 1, 2, 3}, 4, true},
		{"reversed", []int{3, 2, 1, 0}, 4, true},
		{"subset", []int{2}, 4, true},
		{"empty", []int{}, 4, false},
		{"nil", nil, 4, false},
		{"negative", []int{0, -1}, 4, false},
		{"equal to total", []int{4}, 4, false},
		{"beyond total", []int{1, 10}, 4, false},
		{"zero pages", []int{0}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBounds(tc.seq, tc.total)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)
		})
	}
}

func TestValidateBoundsReportsIndex(t *testing.T) {
	err := ValidateBounds([]int{0, 9, -1}, 5)
	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 9, re.Index)
	assert.Equal(t, 5, re.Total)
	assert.False(t, re.Empty)
	assert.Contains(t, err.Error(), "page 10")

	err = ValidateBounds(nil, 5)
	require.True(t, errors.As(err, &re))
	assert.True(t, re.Empty)
}

func TestPolicyResolveCommandPlans(t *testing.T) {
	reorder := Policy{OriginShift: true, FillRemaining: true, TotalPages: 5}
	got, err := reorder.Resolve("3,1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3, 4}, got)

	trim := Policy{OriginShift: true, TotalPages: 8}
	got, err = trim.Resolve("5-6,3,1,8-5")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 2, 0, 7, 6}, got)

	_, err = trim.Resolve("9")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = trim.Resolve("3-")
	assert.ErrorIs(t, err, ErrMalformedSpec)

	_, err = Policy{FillRemaining: true}.Resolve("1")
	assert.ErrorIs(t, err, ErrPolicy)

	got, err = Policy{OriginShift: true}.Resolve("40")
	require.NoError(t, err)
	assert.Equal(t, []int{39}, got)
}
