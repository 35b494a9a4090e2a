// Package animate turns searches on a grid into rendered text frames.
//
// [Frames] replays a traced Dijkstra search: one frame per iteration group
// with the touched cells marked as visited, then one frame per cell of the
// reconstructed path. [Solve] renders a single search result and reports
// its cost; [Construct] is the A* shorthand. All of them paint directly onto
// the grid's nodes, so the grid is cleaned before painting and left painted
// afterwards.
//
// Pacing is not handled here. A [Player] steps through a frame slice at a
// fixed delay for callers that want timed playback.
package animate

import (
	"time"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/grid"
	"github.com/matzehuels/pathpane/pkg/observability"
	"github.com/matzehuels/pathpane/pkg/search"
)

// Markers are the single-character payloads painted onto cells.
type Markers struct {
	Visited string `toml:"visited" json:"visited"`
	Path    string `toml:"path" json:"path"`
}

// DefaultMarkers returns the markers used when none are configured.
func DefaultMarkers() Markers {
	return Markers{Visited: "o", Path: "#"}
}

// Validate checks that both markers are single printable characters.
func (m Markers) Validate() error {
	if err := errors.ValidateMarker(m.Visited); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "visited marker")
	}
	if err := errors.ValidateMarker(m.Path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "path marker")
	}
	return nil
}

// Frames runs a traced Dijkstra search from source to target on g and
// returns every intermediate rendering in order.
//
// Returns UNREACHABLE (and no frames) when target cannot be reached.
func Frames(g *grid.Grid, source, target int, m Markers) (frames []string, err error) {
	start := time.Now()
	defer func() {
		observability.Render().OnRender("frames", len(frames), time.Since(start), err)
	}()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	g.Clean()

	trace, pred, err := search.DijkstraTrace(g.Graph(), source, target)
	if err != nil {
		return nil, err
	}
	path, err := search.PathTo(pred, target, source)
	if err != nil {
		return nil, err
	}

	frames = make([]string, 0, len(trace)+len(path))
	for _, group := range trace {
		for _, i := range group {
			if err := g.Paint(i, m.Visited); err != nil {
				return nil, err
			}
		}
		frames = append(frames, g.String())
	}
	for _, i := range path {
		if err := g.Paint(i, m.Path); err != nil {
			return nil, err
		}
		frames = append(frames, g.String())
	}
	return frames, nil
}

// Algorithm selects the search used by [Solve].
type Algorithm string

// Supported algorithms.
const (
	AStar    Algorithm = "astar"
	Dijkstra Algorithm = "dijkstra"
)

// ParseAlgorithm converts a flag or query value into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AStar, Dijkstra:
		return Algorithm(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown algorithm %q (want astar or dijkstra)", s)
}

// Solution is a painted search result.
type Solution struct {
	Text    string // final rendering
	Path    []int  // travel order, source first
	Cost    int    // sum of edge weights along Path
	Visited int    // cells reached by the search
}

// Solve searches from source to target with algo and paints the result:
// every cell with a predecessor is marked visited, then the path is drawn
// over it. A* is guided by the grid's Manhattan distance scaled to its
// cheapest edge, or by no estimate at all once an edge costs 0.
func Solve(g *grid.Grid, source, target int, algo Algorithm, m Markers) (sol Solution, err error) {
	start := time.Now()
	defer func() {
		observability.Render().OnRender(string(algo), 1, time.Since(start), err)
	}()

	if err := m.Validate(); err != nil {
		return Solution{}, err
	}
	g.Clean()

	var pred search.Predecessors
	switch algo {
	case AStar:
		pred, err = search.AStar(g.Graph(), source, target, heuristic(g, target))
	case Dijkstra:
		pred, err = search.Dijkstra(g.Graph(), source, target)
	default:
		_, err = ParseAlgorithm(string(algo))
	}
	if err != nil {
		return Solution{}, err
	}

	path, err := search.PathTo(pred, target, source)
	if err != nil {
		return Solution{}, err
	}
	cost, err := search.Cost(g.Graph(), search.Reverse(path))
	if err != nil {
		return Solution{}, err
	}

	for i := range pred {
		if err := g.Paint(i, m.Visited); err != nil {
			return Solution{}, err
		}
	}
	for _, i := range path {
		if err := g.Paint(i, m.Path); err != nil {
			return Solution{}, err
		}
	}
	return Solution{
		Text:    g.String(),
		Path:    search.Reverse(path),
		Cost:    cost,
		Visited: len(pred),
	}, nil
}

func heuristic(g *grid.Grid, target int) search.Heuristic {
	unit, ok := g.MinWeight()
	if !ok || unit == 0 {
		return search.Zero
	}
	return g.Manhattan(target, unit)
}

// Construct runs A* and returns the painted rendering.
func Construct(g *grid.Grid, source, target int, m Markers) (string, error) {
	sol, err := Solve(g, source, target, AStar, m)
	if err != nil {
		return "", err
	}
	return sol.Text, nil
}
