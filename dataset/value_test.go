// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("keeps member order", func(t *testing.T) {
		v, err := Decode([]byte(`{"b": 1, "a": 2, "10": 3, "2": 4}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "10", "2"}, v.Keys())
	})

	t.Run("repeated key keeps first position and last value", func(t *testing.T) {
		v, err := Decode([]byte(`{"a": 1, "b": 2, "a": 3}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v.Keys())

		a, ok := v.Get("a")
		require.True(t, ok)
		assert.Equal(t, "3", a.Num.String())
	})

	t.Run("scalars", func(t *testing.T) {
		v, err := Decode([]byte(`[null, true, 12, "x", 1.5, {}]`))
		require.NoError(t, err)
		require.Equal(t, Array, v.Kind)
		require.Len(t, v.Items, 6)

		assert.Equal(t, Null, v.Items[0].Kind)
		assert.True(t, v.Items[1].Boolean)
		assert.True(t, v.Items[2].IsInteger())
		assert.True(t, v.Items[3].IsString())
		assert.False(t, v.Items[4].IsInteger())
		assert.True(t, v.Items[5].IsObject())
	})

	t.Run("large numbers keep their literal", func(t *testing.T) {
		v, err := Decode([]byte(`{"n": 123456789012345678901234567890}`))
		require.NoError(t, err)
		n, _ := v.Get("n")
		assert.True(t, n.IsInteger())
		assert.Equal(t, "123456789012345678901234567890", n.Num.String())
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := Decode([]byte(`{} {}`))
		require.Error(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Decode([]byte(`{"a": [1, 2`))
		require.Error(t, err)
	})
}

func TestValueAccessors(t *testing.T) {
	var missing *Value
	_, ok := missing.Get("a")
	assert.False(t, ok)
	assert.Nil(t, missing.Keys())
	assert.False(t, missing.IsObject())

	v, err := Decode([]byte(`["a"]`))
	require.NoError(t, err)
	assert.False(t, v.Has("a"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
