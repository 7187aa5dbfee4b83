package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracePath(t *testing.T) {
	parents := map[int32]int32{0: -1, 3: 0, 7: 3, 9: 7}
	lookup := func(id int32) int32 { return parents[id] }

	require.Equal(t, []int32{0, 3, 7, 9}, TracePath(lookup, 9, 10))
	require.Equal(t, []int32{0}, TracePath(lookup, 0, 10))
	require.Empty(t, TracePath(lookup, -1, 10))
}

func TestTracePath_StopsOnCycle(t *testing.T) {
	lookup := func(id int32) int32 { return 1 - id }

	require.Len(t, TracePath(lookup, 0, 4), 5)
}
