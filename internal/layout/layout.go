// Package layout loads grid layouts described in YAML with ASCII rows:
//
//	name: corridor
//	diagonal: false
//	heuristic: manhattan
//	rows:
//	  - "S...."
//	  - ".#.#."
//	  - "...#G"
//
// '.' is open floor, '#' a wall, 'S' the start and 'G' the goal.
package layout

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
)

const (
	TileOpen  = '.'
	TileWall  = '#'
	TileStart = 'S'
	TileGoal  = 'G'
	TilePath  = '*'
)

var (
	ErrEmptyLayout      = errors.New("layout: no rows")
	ErrRaggedLayout     = errors.New("layout: rows differ in width")
	ErrUnknownTile      = errors.New("layout: unknown tile")
	ErrDuplicateMarker  = errors.New("layout: start or goal given more than once")
	ErrUnknownHeuristic = errors.New("layout: unknown heuristic")
)

// Layout is a parsed grid description.
type Layout struct {
	Name      string   `yaml:"name"`
	Diagonal  bool     `yaml:"diagonal"`
	Heuristic string   `yaml:"heuristic"`
	Rows      []string `yaml:"rows"`

	Width    int             `yaml:"-"`
	Height   int             `yaml:"-"`
	Start    gridastar.Coord `yaml:"-"`
	Goal     gridastar.Coord `yaml:"-"`
	HasStart bool            `yaml:"-"`
	HasGoal  bool            `yaml:"-"`
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a YAML layout and validates its rows.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if err := l.index(); err != nil {
		return nil, err
	}
	if _, err := EvaluatorByName(l.Heuristic); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) index() error {
	if len(l.Rows) == 0 || len(l.Rows[0]) == 0 {
		return ErrEmptyLayout
	}
	l.Width, l.Height = len(l.Rows[0]), len(l.Rows)
	l.HasStart, l.HasGoal = false, false
	for y, row := range l.Rows {
		if len(row) != l.Width {
			return fmt.Errorf("row %d is %d wide, want %d: %w", y, len(row), l.Width, ErrRaggedLayout)
		}
		for x := 0; x < len(row); x++ {
			at := gridastar.Coord{X: x, Y: y}
			switch row[x] {
			case TileOpen, TileWall:
			case TileStart:
				if l.HasStart {
					return fmt.Errorf("second start at %v: %w", at, ErrDuplicateMarker)
				}
				l.Start, l.HasStart = at, true
			case TileGoal:
				if l.HasGoal {
					return fmt.Errorf("second goal at %v: %w", at, ErrDuplicateMarker)
				}
				l.Goal, l.HasGoal = at, true
			default:
				return fmt.Errorf("%q at %v: %w", row[x], at, ErrUnknownTile)
			}
		}
	}
	return nil
}

// Blocked reports whether c is a wall. Off-grid coordinates count as walls.
func (l *Layout) Blocked(c gridastar.Coord) bool {
	if c.X < 0 || c.Y < 0 || c.X >= l.Width || c.Y >= l.Height {
		return true
	}
	return l.Rows[c.Y][c.X] == TileWall
}

// Cells converts the layout into engine cells whose payload is the tile byte.
func (l *Layout) Cells() [][]gridastar.Cell[byte] {
	return gridastar.NewCells(l.Width, l.Height, func(c gridastar.Coord) (bool, byte) {
		tile := l.Rows[c.Y][c.X]
		return tile == TileWall, tile
	})
}

// Options returns the engine options the layout asks for.
func (l *Layout) Options() []gridastar.Option {
	options := []gridastar.Option{gridastar.WithDiagonal(l.Diagonal)}
	if evaluator, err := EvaluatorByName(l.Heuristic); err == nil && evaluator != nil {
		options = append(options, gridastar.WithEvaluator(evaluator))
	}
	return options
}

// Render draws the layout with path cells marked as '*'. Start and goal
// markers are kept.
func (l *Layout) Render(path []gridastar.Coord) string {
	rows := make([][]byte, l.Height)
	for y, row := range l.Rows {
		rows[y] = []byte(row)
	}
	for _, c := range path {
		if l.Blocked(c) {
			continue
		}
		if tile := rows[c.Y][c.X]; tile == TileOpen {
			rows[c.Y][c.X] = TilePath
		}
	}
	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// EvaluatorByName maps a heuristic name to an evaluator. The empty name
// returns nil so the engine picks its default.
func EvaluatorByName(name string) (gridastar.Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return nil, nil
	case "manhattan":
		return gridastar.Manhattan, nil
	case "euclidean":
		return gridastar.Euclidean, nil
	case "octile":
		return gridastar.Octile, nil
	case "zero", "dijkstra":
		return gridastar.Zero, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownHeuristic)
	}
}

// RandomOptions controls Random.
type RandomOptions struct {
	Width, Height int
	Clusters      int
	Steps         int
	Density       float64
	Seed          int64
}

// Random builds a layout with clustered walls grown by random walks and a
// distinct start and goal that are never walls.
func Random(options RandomOptions) *Layout {
	w, h := max(options.Width, 2), max(options.Height, 1)
	r := rand.New(rand.NewSource(options.Seed))

	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(TileOpen), w))
	}
	directions := [...]gridastar.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	for c := 0; c < options.Clusters; c++ {
		p := gridastar.Coord{X: r.Intn(w), Y: r.Intn(h)}
		for s := 0; s < options.Steps; s++ {
			if r.Float64() < options.Density {
				rows[p.Y][p.X] = TileWall
			}
			next := p.Add(directions[r.Intn(len(directions))])
			if next.X >= 0 && next.X < w && next.Y >= 0 && next.Y < h {
				p = next
			}
		}
	}

	start := gridastar.Coord{X: r.Intn(w), Y: r.Intn(h)}
	goal := start
	for goal == start {
		goal = gridastar.Coord{X: r.Intn(w), Y: r.Intn(h)}
	}
	rows[start.Y][start.X] = TileStart
	rows[goal.Y][goal.X] = TileGoal

	l := &Layout{Name: "random"}
	for _, row := range rows {
		l.Rows = append(l.Rows, string(row))
	}
	// rows are generated from known tiles, index cannot fail
	_ = l.index()
	return l
}
