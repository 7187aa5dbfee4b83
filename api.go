package gridastar

import (
	"context"
	"errors"

	"github.com/pdrpinto/gridastar/internal"
)

// ErrBudgetExceeded is returned by Search when the expansion budget set with
// WithMaxExpansions runs out before the search settles.
var ErrBudgetExceeded = errors.New("gridastar: expansion budget exceeded")

// Result contains the outcome of a search.
type Result[PayloadType any] struct {
	Path          []Cell[PayloadType]
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for an Engine.
type Options struct {
	Diagonal      bool
	Evaluator     Evaluator
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithDiagonal enables or disables 8-directional movement.
func WithDiagonal(enabled bool) Option {
	return func(options *Options) { options.Diagonal = enabled }
}

// WithEvaluator overrides the heuristic. Without it the engine uses Euclidean
// when diagonal movement is enabled and Manhattan otherwise.
func WithEvaluator(evaluator Evaluator) Option {
	return func(options *Options) { options.Evaluator = evaluator }
}

// WithMaxExpansions caps the number of nodes a single query may close.
// Zero means no limit.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// Engine runs A* queries over one grid. It owns a search node per cell and
// reuses them across queries, so an Engine must not be used from more than
// one goroutine at a time, and a batch query invalidates any step session
// in progress.
type Engine[PayloadType any] struct {
	cells         [][]Cell[PayloadType]
	width, height int
	diagonal      bool
	evaluator     Evaluator
	maxExpansions int

	nodes  []searchNode
	open   *openList
	closed []int32

	target  int32
	session *session[PayloadType]
}

// New builds an engine over cells, laid out as cells[y][x]. The engine keeps a
// reference to cells and never modifies it.
func New[PayloadType any](cells [][]Cell[PayloadType], options ...Option) (*Engine[PayloadType], error) {
	width, height, err := validateCells(cells)
	if err != nil {
		return nil, err
	}

	// --- Apply options ---
	engineOptions := Options{}
	for _, option := range options {
		option(&engineOptions)
	}
	evaluator := engineOptions.Evaluator
	if evaluator == nil {
		evaluator = Manhattan
		if engineOptions.Diagonal {
			evaluator = Euclidean
		}
	}

	nodes := make([]searchNode, width*height)
	for i := range nodes {
		nodes[i].reset()
	}
	return &Engine[PayloadType]{
		cells:         cells,
		width:         width,
		height:        height,
		diagonal:      engineOptions.Diagonal,
		evaluator:     evaluator,
		maxExpansions: engineOptions.MaxExpansions,
		nodes:         nodes,
		open:          newOpenList(nodes),
		closed:        make([]int32, 0, 64),
		target:        noNode,
	}, nil
}

func (e *Engine[PayloadType]) Width() int           { return e.width }
func (e *Engine[PayloadType]) Height() int          { return e.height }
func (e *Engine[PayloadType]) Diagonal() bool       { return e.diagonal }
func (e *Engine[PayloadType]) Evaluator() Evaluator { return e.evaluator }

// InBounds reports whether c lies on the grid.
func (e *Engine[PayloadType]) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < e.width && c.Y < e.height
}

// Cell returns the caller's cell at c.
func (e *Engine[PayloadType]) Cell(c Coord) (Cell[PayloadType], bool) {
	if !e.InBounds(c) {
		return Cell[PayloadType]{}, false
	}
	return e.cells[c.Y][c.X], true
}

// State reports the lifecycle state c reached in the most recent query.
func (e *Engine[PayloadType]) State(c Coord) NodeState {
	if !e.InBounds(c) {
		return Unvisited
	}
	return e.nodes[e.index(c)].state
}

// TryFindPath searches for a route from start to target. The path runs from
// start to target inclusive; it is nil whenever found is false, which covers
// unreachable targets as well as endpoints that are off the grid or blocked.
func (e *Engine[PayloadType]) TryFindPath(start, target Coord) (bool, []Cell[PayloadType]) {
	result, err := e.Search(context.Background(), start, target)
	if err != nil || !result.Found {
		return false, nil
	}
	return true, result.Path
}

// Search runs the query to completion. A missing route is reported through
// Result.Found with a nil error; errors are reserved for context
// cancellation and ErrBudgetExceeded.
func (e *Engine[PayloadType]) Search(contextObject context.Context, start, target Coord) (Result[PayloadType], error) {
	if !e.begin(start, target) {
		return Result[PayloadType]{}, nil
	}

	expandedNodes := 0
	for !e.open.IsEmpty() {
		if err := contextObject.Err(); err != nil {
			return Result[PayloadType]{ExpandedNodes: expandedNodes}, err
		}
		if e.maxExpansions > 0 && expandedNodes >= e.maxExpansions {
			return Result[PayloadType]{ExpandedNodes: expandedNodes}, ErrBudgetExceeded
		}

		current, reached := e.expand()
		expandedNodes++
		if reached {
			return Result[PayloadType]{
				Path:          e.pathTo(current),
				TotalCost:     e.nodes[current].g,
				ExpandedNodes: expandedNodes,
				Found:         true,
			}, nil
		}
	}
	return Result[PayloadType]{ExpandedNodes: expandedNodes}, nil
}

// begin resets all working state and opens the start node. It returns false
// when either endpoint is off the grid or blocked.
func (e *Engine[PayloadType]) begin(start, target Coord) bool {
	e.session = nil
	for i := range e.nodes {
		e.nodes[i].reset()
	}
	e.open.Clear()
	e.closed = e.closed[:0]
	e.target = noNode

	if !e.passable(start) || !e.passable(target) {
		return false
	}
	e.target = e.index(target)

	id := e.index(start)
	node := &e.nodes[id]
	node.h = e.evaluator.Evaluate(start, target)
	node.f = node.h
	node.state = Open
	e.open.Enqueue(id)
	return true
}

// expand closes the best open node and relaxes its neighbours unless it is
// the target. The open list must not be empty.
func (e *Engine[PayloadType]) expand() (int32, bool) {
	current := e.open.Dequeue()
	e.nodes[current].state = Closed
	e.closed = append(e.closed, current)
	if current == e.target {
		return current, true
	}

	from := e.coord(current)
	target := e.coord(e.target)
	currentG := e.nodes[current].g
	offsets := neighborOffsets[:cardinalNeighbors]
	if e.diagonal {
		offsets = neighborOffsets[:]
	}
	for _, offset := range offsets {
		to := from.Add(offset)
		if !e.passable(to) {
			continue
		}
		id := e.index(to)
		neighbor := &e.nodes[id]
		tentativeG := currentG + StepCost(from, to)

		switch neighbor.state {
		case Closed:
			continue
		case Open:
			if tentativeG >= neighbor.g {
				continue
			}
			neighbor.g = tentativeG
			neighbor.f = neighbor.g + neighbor.h
			neighbor.parent = current
			e.open.Fix(id)
		case Unvisited:
			neighbor.g = tentativeG
			neighbor.h = e.evaluator.Evaluate(to, target)
			neighbor.f = neighbor.g + neighbor.h
			neighbor.parent = current
			neighbor.state = Open
			e.open.Enqueue(id)
		}
	}
	return current, false
}

func (e *Engine[PayloadType]) pathTo(id int32) []Cell[PayloadType] {
	chain := internal.TracePath(func(i int32) int32 { return e.nodes[i].parent }, id, len(e.nodes))
	return e.cellsOf(chain)
}

func (e *Engine[PayloadType]) cellsOf(ids []int32) []Cell[PayloadType] {
	cells := make([]Cell[PayloadType], len(ids))
	for i, id := range ids {
		cells[i] = e.cellAt(id)
	}
	return cells
}

func (e *Engine[PayloadType]) passable(c Coord) bool {
	return e.InBounds(c) && !e.cells[c.Y][c.X].Blocked
}

func (e *Engine[PayloadType]) index(c Coord) int32 { return int32(c.Y*e.width + c.X) }

func (e *Engine[PayloadType]) coord(id int32) Coord {
	return Coord{X: int(id) % e.width, Y: int(id) / e.width}
}

func (e *Engine[PayloadType]) cellAt(id int32) Cell[PayloadType] {
	c := e.coord(id)
	return e.cells[c.Y][c.X]
}
