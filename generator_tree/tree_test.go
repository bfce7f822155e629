package gentree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLeaves(n int) [][]byte {
	data := make([][]byte, n)
	for i := range data {
		data[i] = []byte(fmt.Sprintf("generator-%d", i))
	}
	return data
}

func TestInclusion(t *testing.T) {
	for _, n := range []int{2, 3, 8} {
		data := testLeaves(n)
		tree, err := New(data)
		require.NoError(t, err)
		assert.Len(t, tree.Root(), 32)
		assert.Equal(t, n, tree.Len())

		for i := range data {
			proof, err := tree.Proof(i)
			require.NoError(t, err)
			ok, err := Verify(data[i], proof, tree.Root())
			require.NoError(t, err)
			assert.True(t, ok, "n=%d leaf=%d", n, i)

			ok, err = Verify([]byte("intruder"), proof, tree.Root())
			require.NoError(t, err)
			assert.False(t, ok)
		}
	}
}

func TestDuplicateLeavesKeepPosition(t *testing.T) {
	data := [][]byte{[]byte("same"), []byte("same"), []byte("other"), []byte("same")}
	tree, err := New(data)
	require.NoError(t, err)

	proof, err := tree.Proof(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), proof.Index)
	ok, err := Verify(data[1], proof, tree.Root())
	require.NoError(t, err)
	assert.True(t, ok)

	// same bytes claimed at another position
	proof.Index = 3
	ok, err = Verify(data[1], proof, tree.Root())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTreeErrors(t *testing.T) {
	_, err := New(testLeaves(1))
	assert.True(t, errors.Is(err, ErrTooFewLeaves))

	tree, err := New(testLeaves(4))
	require.NoError(t, err)
	_, err = tree.Proof(4)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = tree.Proof(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	other, err := New(testLeaves(5))
	require.NoError(t, err)
	assert.NotEqual(t, tree.Root(), other.Root())
}
