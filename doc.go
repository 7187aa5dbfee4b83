// Package gridastar provides an A* pathfinding engine over fixed-size 2D cell grids.
//
// It exposes two main entry points:
//
//   - TryFindPath / Search: run the algorithm to completion and get a path.
//   - StartStep: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// An Engine allocates one search node per grid cell at construction and reuses
// them for every query, so it is cheap to query repeatedly but must not be
// shared between goroutines. Use a Pool when several goroutines need to search
// the same grid.
package gridastar
