// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortIDs(t *testing.T) {
	tcs := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "numeric not lexical",
			ids:      []string{"10", "2", "1", "33", "4"},
			expected: []string{"1", "2", "4", "10", "33"},
		},
		{
			name:     "leading zeros",
			ids:      []string{"010", "9", "0"},
			expected: []string{"0", "9", "010"},
		},
		{
			name:     "beyond int64",
			ids:      []string{"99999999999999999999", "100000000000000000000", "7"},
			expected: []string{"7", "99999999999999999999", "100000000000000000000"},
		},
		{
			name:     "non numeric last",
			ids:      []string{"b", "3", "a", "1"},
			expected: []string{"1", "3", "a", "b"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			SortIDs(tc.ids)
			assert.Equal(t, tc.expected, tc.ids)
		})
	}
}

func TestDifference(t *testing.T) {
	a := map[string]struct{}{"1": {}, "2": {}, "12": {}, "3": {}}
	b := map[string]struct{}{"2": {}}

	assert.Equal(t, []string{"1", "3", "12"}, difference(a, b))
	assert.Empty(t, difference(b, a))
}
