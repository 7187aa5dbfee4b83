package gridastar

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when the grid is nil or has no rows or columns.
	ErrEmptyGrid = errors.New("gridastar: empty grid")
	// ErrRaggedGrid is returned when the grid rows have different widths.
	ErrRaggedGrid = errors.New("gridastar: ragged grid")
	// ErrCellIndex is returned when a cell's Index does not match its position.
	ErrCellIndex = errors.New("gridastar: cell index mismatch")
)

// Coord is a grid position. X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Cell describes one grid position. Cells are owned by the caller; the engine
// only reads Index and Blocked and hands Payload back untouched in paths.
type Cell[PayloadType any] struct {
	Index   Coord
	Blocked bool
	Payload PayloadType
}

// NodeState is the lifecycle of a search node within one query.
// Transitions only ever go Unvisited -> Open -> Closed.
type NodeState uint8

const (
	Unvisited NodeState = iota
	Open
	Closed
)

func (s NodeState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
}

// NewCells builds a width x height grid laid out as cells[y][x] with every
// Index filled in. fill may be nil, in which case all cells are open.
func NewCells[PayloadType any](width, height int, fill func(Coord) (bool, PayloadType)) [][]Cell[PayloadType] {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]Cell[PayloadType], height)
	for y := range cells {
		row := make([]Cell[PayloadType], width)
		for x := range row {
			coord := Coord{X: x, Y: y}
			row[x].Index = coord
			if fill != nil {
				row[x].Blocked, row[x].Payload = fill(coord)
			}
		}
		cells[y] = row
	}
	return cells
}

// validateCells checks the grid shape and returns its dimensions.
func validateCells[PayloadType any](cells [][]Cell[PayloadType]) (int, int, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	width, height := len(cells[0]), len(cells)
	for y, row := range cells {
		if len(row) != width {
			return 0, 0, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRaggedGrid)
		}
		for x := range row {
			if want := (Coord{X: x, Y: y}); row[x].Index != want {
				return 0, 0, fmt.Errorf("cell at %v reports index %v: %w", want, row[x].Index, ErrCellIndex)
			}
		}
	}
	return width, height, nil
}
