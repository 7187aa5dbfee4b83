package gridastar

import "math"

// Evaluator estimates the remaining cost from current to target.
// It must be non-negative; to keep paths optimal it must also never
// overestimate the true cost under the movement model in use.
type Evaluator interface {
	Evaluate(current, target Coord) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(current, target Coord) float64

func (f EvaluatorFunc) Evaluate(current, target Coord) float64 { return f(current, target) }

type (
	manhattan struct{}
	euclidean struct{}
	octile    struct{}
	zero      struct{}
)

var (
	// Manhattan is the L1 distance, admissible for 4-directional movement.
	Manhattan Evaluator = manhattan{}
	// Euclidean is the straight-line distance, admissible for 8-directional movement.
	Euclidean Evaluator = euclidean{}
	// Octile is the exact move cost on an open 8-directional grid with
	// diagonal steps costing √2. Tighter than Euclidean, still admissible.
	Octile Evaluator = octile{}
	// Zero turns the search into Dijkstra's algorithm.
	Zero Evaluator = zero{}
)

func (manhattan) Evaluate(current, target Coord) float64 {
	dx, dy := delta(current, target)
	return dx + dy
}

func (euclidean) Evaluate(current, target Coord) float64 {
	dx, dy := delta(current, target)
	return math.Hypot(dx, dy)
}

func (octile) Evaluate(current, target Coord) float64 {
	dx, dy := delta(current, target)
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

func (zero) Evaluate(Coord, Coord) float64 { return 0 }

// StepCost is the geometric cost of moving between two adjacent cells:
// 1 for a cardinal move and √2 for a diagonal one. It does not depend on the
// configured Evaluator.
func StepCost(from, to Coord) float64 {
	dx, dy := delta(from, to)
	switch {
	case dx == 0 || dy == 0:
		return dx + dy
	case dx == 1 && dy == 1:
		return math.Sqrt2
	default:
		return math.Hypot(dx, dy)
	}
}

func delta(a, b Coord) (float64, float64) {
	return math.Abs(float64(b.X - a.X)), math.Abs(float64(b.Y - a.Y))
}

// neighborOffsets lists cardinal moves first, then diagonals.
// The order is part of the tie-breaking contract.
var neighborOffsets = [...]Coord{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

const cardinalNeighbors = 4
