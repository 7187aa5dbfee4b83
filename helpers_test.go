package gridastar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// asciiCells builds a grid from rows where '#' is blocked; the payload is the
// tile byte.
func asciiCells(rows ...string) [][]Cell[byte] {
	return NewCells(len(rows[0]), len(rows), func(c Coord) (bool, byte) {
		return rows[c.Y][c.X] == '#', rows[c.Y][c.X]
	})
}

func openCells(width, height int) [][]Cell[byte] {
	return NewCells[byte](width, height, nil)
}

func randomCells(r *rand.Rand, width, height int, density float64) [][]Cell[byte] {
	return NewCells(width, height, func(Coord) (bool, byte) {
		return r.Float64() < density, 0
	})
}

func mustEngine(t *testing.T, cells [][]Cell[byte], options ...Option) *Engine[byte] {
	t.Helper()
	engine, err := New(cells, options...)
	require.NoError(t, err)
	return engine
}

func coords[PayloadType any](cells []Cell[PayloadType]) []Coord {
	if cells == nil {
		return nil
	}
	res := make([]Coord, len(cells))
	for i, cell := range cells {
		res[i] = cell.Index
	}
	return res
}

// bfsDistance is the number of cardinal moves on the shortest route, or -1.
func bfsDistance(cells [][]Cell[byte], start, target Coord) int {
	height, width := len(cells), len(cells[0])
	passable := func(c Coord) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height && !cells[c.Y][c.X].Blocked
	}
	if !passable(start) || !passable(target) {
		return -1
	}
	dist := map[Coord]int{start: 0}
	queue := []Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == target {
			return dist[current]
		}
		for _, offset := range neighborOffsets[:cardinalNeighbors] {
			next := current.Add(offset)
			if _, seen := dist[next]; seen || !passable(next) {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

// requireValidPath checks endpoints, adjacency under the movement model and
// that no step lands on a blocked cell.
func requireValidPath(t *testing.T, path []Cell[byte], start, target Coord, diagonal bool) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0].Index)
	require.Equal(t, target, path[len(path)-1].Index)
	for i := 1; i < len(path); i++ {
		require.False(t, path[i].Blocked, "path crosses blocked cell %v", path[i].Index)
		dx := abs(path[i].Index.X - path[i-1].Index.X)
		dy := abs(path[i].Index.Y - path[i-1].Index.Y)
		require.True(t, dx <= 1 && dy <= 1 && dx+dy > 0, "cells %v and %v are not adjacent", path[i-1].Index, path[i].Index)
		if !diagonal {
			require.Equal(t, 1, dx+dy, "diagonal move %v -> %v", path[i-1].Index, path[i].Index)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
