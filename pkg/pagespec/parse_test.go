package pagespec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	cases := []struct {
		spec  string
		shift bool
		dups  bool
		want  []int
	}{
		{"1-3", true, false, []int{0, 1, 2}},
		{"5-3", true, false, []int{4, 3, 2}},
		{"1-3,6,9-7", true, false, []int{0, 1, 2, 5, 8, 7, 6}},
		{"4,1,2", true, false, []int{3, 0, 1}},
		{"1-5,7,8,10-12,9", false, false, []int{1, 2, 3, 4, 5, 7, 8, 10, 11, 12, 9}},
		{"5-6,3,1,8-5", true, false, []int{4, 5, 2, 0, 7, 6}},
		{"5-6,3,1,8-5", true, true, []int{4, 5, 2, 0, 7, 6, 5, 4}},
		{"1,1,2", false, true, []int{1, 1, 2}},
		{"1,1,2", false, false, []int{1, 2}},
		{"1", true, false, []int{0}},
		// Bounds are not the parser's concern.
		{"0", true, false, []int{-1}},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := ParseSpec(tc.spec, tc.shift, tc.dups)
			require.NoError(t, err)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("ParseSpec(%q) mismatch (-want +got):\n%s", tc.spec, d)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	got, err := Parse("2,2-3", WithOriginShift(), WithDuplicates())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, got)

	got, err = Parse("2,2-3")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)
}

func TestParseMalformed(t *testing.T) {
	for _, spec := range []string{"3-", "", "a,b", "1,,2", "1, ,2"} {
		_, err := ParseSpec(spec, false, false)
		assert.True(t, errors.Is(err, ErrMalformedSpec), "spec %q: %v", spec, err)
	}
}

func TestParseDeterministic(t *testing.T) {
	a, err := ParseSpec("9-1,4,2-3", true, false)
	require.NoError(t, err)
	b, err := ParseSpec("9-1,4,2-3", true, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseGroups(t *testing.T) {
	got, err := ParseGroups("1-5,3-6,7", true)
	require.NoError(t, err)
	want := [][]int{{0, 1, 2, 3, 4}, {2, 3, 4, 5}, {6}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", d)
	}

	_, err = ParseGroups("1-5,,7", true)
	assert.ErrorIs(t, err, ErrMalformedSpec)
}
