package hashindex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindInEmptyIndex(t *testing.T) {
	idx := New()
	_, ok := idx.Find("missing")
	assert.False(t, ok)
}

func TestInsertAndFind(t *testing.T) {
	idx := New()
	_, inserted := idx.Insert("a", 1)
	assert.True(t, inserted)

	v, ok := idx.Find("a")
	require.True(t, ok)
	assert.EqualValues(t, 1, v)
	assert.Equal(t, 1, idx.Len())
}

func TestInsertDuplicateKeepsFirstValue(t *testing.T) {
	idx := New()
	idx.Insert("a", 1)
	existing, inserted := idx.Insert("a", 2)
	assert.False(t, inserted)
	assert.EqualValues(t, 1, existing)

	v, _ := idx.Find("a")
	assert.EqualValues(t, 1, v, "duplicate insert must not overwrite")
	assert.Equal(t, 1, idx.Len())
}

func TestDelete(t *testing.T) {
	idx := New()
	idx.Insert("a", 1)
	idx.Insert("b", 2)

	assert.True(t, idx.Delete("a"))
	_, ok := idx.Find("a")
	assert.False(t, ok)

	v, ok := idx.Find("b")
	require.True(t, ok)
	assert.EqualValues(t, 2, v)

	assert.False(t, idx.Delete("a"))
}

func TestDeleteDoesNotBreakProbeChain(t *testing.T) {
	idx := New()
	for i := 0; i < 8; i++ {
		idx.Insert(fmt.Sprintf("k%d", i), int64(i))
	}
	require.True(t, idx.Delete("k0"))

	for i := 1; i < 8; i++ {
		v, ok := idx.Find(fmt.Sprintf("k%d", i))
		require.True(t, ok, "k%d should still be findable after deleting k0", i)
		assert.EqualValues(t, i, v)
	}
}

func TestGrowPreservesAllEntries(t *testing.T) {
	idx := New()
	const n = 200
	for i := 0; i < n; i++ {
		idx.Insert(fmt.Sprintf("key-%d", i), int64(i))
	}
	assert.Equal(t, n, idx.Len())
	for i := 0; i < n; i++ {
		v, ok := idx.Find(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		assert.EqualValues(t, i, v)
	}
}
