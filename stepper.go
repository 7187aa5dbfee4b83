package gridastar

import (
	"errors"
	"slices"
)

// ErrStaleSession is reported on a Step whose session was superseded by a
// later query on the same engine.
var ErrStaleSession = errors.New("gridastar: step session superseded by another query")

// Step is a snapshot of a stepwise search taken after one expansion round.
// The slices are copies and stay valid after the search moves on.
type Step[PayloadType any] struct {
	Index      int
	Current    Cell[PayloadType]
	HasCurrent bool
	Target     Cell[PayloadType]
	Open       []Cell[PayloadType]
	Closed     []Cell[PayloadType]

	// DiagnosticPath is the parent chain of the most recently closed cell.
	// It shows how the frontier got where it is; it is not a route to the
	// target unless Found is set, and after a dead end it is only a hint.
	DiagnosticPath []Cell[PayloadType]
	// Path is the route from start to target and is only set when Found.
	Path []Cell[PayloadType]

	Found        bool
	IsDeadEnd    bool
	HasMoreSteps bool
	Err          error

	session *session[PayloadType]
}

// Next performs the following expansion round of the session this step
// belongs to. Once a step reports no more steps, Next keeps returning the
// terminal snapshot and false.
func (step *Step[PayloadType]) Next() (*Step[PayloadType], bool) {
	if step.session == nil || !step.HasMoreSteps {
		return step, false
	}
	next := step.session.advance()
	return next, next.HasMoreSteps
}

// session is the paused state of a stepwise query. The node arena and open
// and closed lists it works on belong to the engine.
type session[PayloadType any] struct {
	engine    *Engine[PayloadType]
	target    Cell[PayloadType]
	stepCount int
	done      bool
	found     bool
	deadEnd   bool
	err       error
	terminal  *Step[PayloadType]
}

// StartStep resets the engine, opens start and performs the first expansion
// round. Starting a step session or running any other query on the engine
// invalidates the previous session.
func (e *Engine[PayloadType]) StartStep(start, target Coord) *Step[PayloadType] {
	valid := e.begin(start, target)
	s := &session[PayloadType]{engine: e, target: Cell[PayloadType]{Index: target}}
	if cell, ok := e.Cell(target); ok {
		s.target = cell
	}
	e.session = s
	if !valid {
		s.done = true
		s.deadEnd = true
		s.terminal = s.snapshot(noNode)
		return s.terminal
	}
	return s.advance()
}

func (s *session[PayloadType]) advance() *Step[PayloadType] {
	e := s.engine
	if e.session != s {
		return &Step[PayloadType]{Index: s.stepCount, Target: s.target, Err: ErrStaleSession}
	}
	if s.done {
		return s.terminal
	}
	if e.open.IsEmpty() {
		s.done = true
		s.deadEnd = true
		s.terminal = s.snapshot(noNode)
		return s.terminal
	}
	if e.maxExpansions > 0 && s.stepCount >= e.maxExpansions {
		s.done = true
		s.err = ErrBudgetExceeded
		s.terminal = s.snapshot(noNode)
		return s.terminal
	}

	s.stepCount++
	current, reached := e.expand()
	switch {
	case reached:
		s.done = true
		s.found = true
	case e.open.IsEmpty():
		s.done = true
		s.deadEnd = true
	}

	snapshot := s.snapshot(current)
	if s.done {
		s.terminal = snapshot
	}
	return snapshot
}

// snapshot copies the engine state. current is noNode when the round closed
// nothing, in which case the diagnostic path follows the last closed node.
func (s *session[PayloadType]) snapshot(current int32) *Step[PayloadType] {
	e := s.engine
	step := &Step[PayloadType]{
		Index:        s.stepCount,
		Target:       s.target,
		Open:         e.cellsOf(e.open.items),
		Closed:       e.cellsOf(e.closed),
		Found:        s.found,
		IsDeadEnd:    s.deadEnd,
		HasMoreSteps: !s.done,
		Err:          s.err,
		session:      s,
	}
	if current != noNode {
		step.Current = e.cellAt(current)
		step.HasCurrent = true
	}
	if n := len(e.closed); n > 0 {
		step.DiagnosticPath = e.pathTo(e.closed[n-1])
	}
	if s.found {
		step.Path = slices.Clone(step.DiagnosticPath)
	}
	return step
}
