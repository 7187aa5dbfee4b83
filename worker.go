package gridastar

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrPoolSize is returned by NewPool for a non-positive size.
var ErrPoolSize = errors.New("gridastar: pool size must be positive")

// Query is one start/target pair submitted to a Pool.
type Query struct {
	Start  Coord
	Target Coord
}

// Pool hands out engines built over the same grid so several goroutines can
// search it at once. Each engine is used by one goroutine at a time.
type Pool[PayloadType any] struct {
	engines chan *Engine[PayloadType]
	size    int
}

// NewPool builds size engines over cells with the given options.
func NewPool[PayloadType any](cells [][]Cell[PayloadType], size int, options ...Option) (*Pool[PayloadType], error) {
	if size <= 0 {
		return nil, ErrPoolSize
	}
	pool := &Pool[PayloadType]{
		engines: make(chan *Engine[PayloadType], size),
		size:    size,
	}
	for i := 0; i < size; i++ {
		engine, err := New(cells, options...)
		if err != nil {
			return nil, err
		}
		pool.engines <- engine
	}
	return pool, nil
}

// Size returns the number of engines in the pool.
func (pool *Pool[PayloadType]) Size() int { return pool.size }

// Search borrows an engine, waiting until one is free or the context ends.
func (pool *Pool[PayloadType]) Search(contextObject context.Context, start, target Coord) (Result[PayloadType], error) {
	var engine *Engine[PayloadType]
	select {
	case <-contextObject.Done():
		return Result[PayloadType]{}, contextObject.Err()
	case engine = <-pool.engines:
	}
	defer func() { pool.engines <- engine }()
	return engine.Search(contextObject, start, target)
}

// SearchAll runs the queries concurrently, at most Size at a time. Results
// are index-aligned with queries. The first error cancels the rest.
func (pool *Pool[PayloadType]) SearchAll(contextObject context.Context, queries []Query) ([]Result[PayloadType], error) {
	results := make([]Result[PayloadType], len(queries))
	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(pool.size)
	for i, query := range queries {
		group.Go(func() error {
			result, err := pool.Search(groupContext, query.Start, query.Target)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
