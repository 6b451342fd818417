package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/forest/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := orderedmap.New[string, int]()
	require.NoError(t, m.Set("b", 1))
	require.NoError(t, m.Set("a", 2))
	require.NoError(t, m.Set("c", 3))
	require.ErrorIs(t, m.Set("a", 100), orderedmap.ErrDuplicateEntry)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v, "first value wins")
	require.False(t, m.Has("z"))
	require.Equal(t, 3, m.Len())

	var keys []string
	var vals []int
	for k, v := range m.Range() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	require.Equal(t, []string{"b", "a", "c"}, keys, "insertion order is kept")
	require.Equal(t, []int{1, 2, 3}, vals)

	k, v, ok := m.Find(func(k string) bool { return k != "b" })
	require.True(t, ok)
	require.Equal(t, "a", k)
	require.Equal(t, 2, v)

	_, _, ok = m.Find(func(string) bool { return false })
	require.False(t, ok)
}
