package gridastar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluators(t *testing.T) {
	from, to := Coord{1, 1}, Coord{4, 5}

	require.Equal(t, 7.0, Manhattan.Evaluate(from, to))
	require.Equal(t, 5.0, Euclidean.Evaluate(from, to))
	require.InDelta(t, 4+3*(math.Sqrt2-1), Octile.Evaluate(from, to), 1e-12)
	require.Equal(t, 0.0, Zero.Evaluate(from, to))

	for _, evaluator := range []Evaluator{Manhattan, Euclidean, Octile, Zero} {
		require.Equal(t, 0.0, evaluator.Evaluate(to, to))
		require.Equal(t, evaluator.Evaluate(from, to), evaluator.Evaluate(to, from))
	}
}

func TestEvaluatorFunc(t *testing.T) {
	calls := 0
	double := EvaluatorFunc(func(current, target Coord) float64 {
		calls++
		return 2 * Manhattan.Evaluate(current, target)
	})

	require.Equal(t, 4.0, double.Evaluate(Coord{0, 0}, Coord{1, 1}))
	require.Equal(t, 1, calls)
}

func TestStepCost(t *testing.T) {
	require.Equal(t, 1.0, StepCost(Coord{2, 2}, Coord{2, 3}))
	require.Equal(t, 1.0, StepCost(Coord{2, 2}, Coord{1, 2}))
	require.Equal(t, math.Sqrt2, StepCost(Coord{2, 2}, Coord{3, 1}))
}

func TestCustomEvaluatorIsUsed(t *testing.T) {
	var seen []Coord
	recorder := EvaluatorFunc(func(current, target Coord) float64 {
		seen = append(seen, current)
		return Manhattan.Evaluate(current, target)
	})
	engine := mustEngine(t, openCells(3, 1), WithEvaluator(recorder))

	found, _ := engine.TryFindPath(Coord{0, 0}, Coord{2, 0})

	require.True(t, found)
	require.Equal(t, []Coord{{0, 0}, {1, 0}, {2, 0}}, seen)
}
