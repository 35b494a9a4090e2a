package search

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/grid"
	"github.com/matzehuels/pathpane/pkg/observability"
)

// chain builds 0 → 1 → … → n-1 with unit weights.
func chain(t *testing.T, n int) *graph.Graph[int] {
	t.Helper()
	g := graph.New[int]()
	for i := range n {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		if err := g.Link(i-1, i, 1); err != nil {
			t.Fatalf("Link(%d, %d): %v", i-1, i, err)
		}
	}
	return g
}

func lattice(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	gr, err := grid.New(w, h, ".")
	if err != nil {
		t.Fatalf("grid.New(%d, %d): %v", w, h, err)
	}
	return gr
}

func TestChain(t *testing.T) {
	g := chain(t, 4)
	want := Predecessors{1: 0, 2: 1, 3: 2}

	searches := map[string]func() (Predecessors, error){
		"dijkstra": func() (Predecessors, error) { return Dijkstra(g, 0, 3) },
		"astar":    func() (Predecessors, error) { return AStar(g, 0, 3, Zero) },
	}
	for name, run := range searches {
		t.Run(name, func(t *testing.T) {
			pred, err := run()
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if diff := cmp.Diff(want, pred); diff != "" {
				t.Errorf("predecessors mismatch (-want +got):\n%s", diff)
			}
			path, err := Path(pred, 3)
			if err != nil {
				t.Fatalf("Path: %v", err)
			}
			if diff := cmp.Diff([]int{3, 2, 1, 0}, path); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGridCost(t *testing.T) {
	gr := lattice(t, 3, 3)
	g := gr.Graph()

	d, err := Distance(g, 0, 8)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d != 40 {
		t.Errorf("Distance(0, 8) = %d, want 40", d)
	}

	pred, err := AStar(g, 0, 8, gr.Manhattan(8, grid.DefaultWeight))
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	path, err := PathTo(pred, 8, 0)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if len(path) != 5 {
		t.Errorf("path %v has %d nodes, want 5", path, len(path))
	}
	cost, err := Cost(g, Reverse(path))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != 40 {
		t.Errorf("A* cost = %d, want 40", cost)
	}
}

func TestAStarTieBreak(t *testing.T) {
	gr := lattice(t, 3, 3)

	// Every cell lies on a cheapest route here, so all f scores tie and the
	// highest open index is expanded first.
	pred, err := AStar(gr.Graph(), 0, 8, gr.Manhattan(8, grid.DefaultWeight))
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	if diff := cmp.Diff(Predecessors{1: 0, 3: 0, 4: 3, 6: 3, 7: 6, 8: 7}, pred); diff != "" {
		t.Errorf("predecessors mismatch (-want +got):\n%s", diff)
	}
	path, err := PathTo(pred, 8, 0)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if diff := cmp.Diff([]int{8, 7, 6, 3, 0}, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestDijkstraAndAStarAgree(t *testing.T) {
	gr := lattice(t, 4, 4)
	for i := range gr.Len() {
		if err := gr.SetEdgeWeight(i, 0, 10+(i*7)%25); err != nil {
			t.Fatalf("SetEdgeWeight(%d): %v", i, err)
		}
	}
	g := gr.Graph()

	for _, target := range []int{3, 5, 10, 12, 15} {
		want, err := Distance(g, 0, target)
		if err != nil {
			t.Fatalf("Distance(0, %d): %v", target, err)
		}
		pred, err := AStar(g, 0, target, gr.Manhattan(target, grid.DefaultWeight))
		if err != nil {
			t.Fatalf("AStar(0, %d): %v", target, err)
		}
		path, err := PathTo(pred, target, 0)
		if err != nil {
			t.Fatalf("PathTo(%d): %v", target, err)
		}
		got, err := Cost(g, Reverse(path))
		if err != nil {
			t.Fatalf("Cost: %v", err)
		}
		if got != want {
			t.Errorf("target %d: A* cost %d, Dijkstra cost %d", target, got, want)
		}
	}
}

func TestDijkstraTrace(t *testing.T) {
	gr := lattice(t, 2, 2)

	trace, pred, err := DijkstraTrace(gr.Graph(), 0, 3)
	if err != nil {
		t.Fatalf("DijkstraTrace: %v", err)
	}
	wantTrace := Trace{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	if diff := cmp.Diff(wantTrace, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Predecessors{1: 0, 2: 0, 3: 1}, pred); diff != "" {
		t.Errorf("predecessors mismatch (-want +got):\n%s", diff)
	}
}

func TestUnreachable(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		g := graph.New[int]()
		g.AddNode(0)
		g.AddNode(1)

		trace, _, err := DijkstraTrace(g, 0, 1)
		if !errors.Is(err, errors.ErrCodeUnreachable) {
			t.Fatalf("DijkstraTrace error = %v, want UNREACHABLE", err)
		}
		if diff := cmp.Diff(Trace{{0}}, trace); diff != "" {
			t.Errorf("trace mismatch (-want +got):\n%s", diff)
		}
		if _, err := AStar(g, 0, 1, nil); !errors.Is(err, errors.ErrCodeUnreachable) {
			t.Errorf("AStar error = %v, want UNREACHABLE", err)
		}
	})

	t.Run("sealed source", func(t *testing.T) {
		g := chain(t, 2)
		if err := g.Seal(0); err != nil {
			t.Fatal(err)
		}
		trace, _, err := DijkstraTrace(g, 0, 1)
		if !errors.Is(err, errors.ErrCodeUnreachable) {
			t.Fatalf("error = %v, want UNREACHABLE", err)
		}
		if len(trace) != 0 {
			t.Errorf("trace = %v, want empty", trace)
		}
	})

	t.Run("sealed wall", func(t *testing.T) {
		gr := lattice(t, 3, 3)
		for _, i := range []int{1, 4, 7} {
			if err := gr.Seal(i); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := Dijkstra(gr.Graph(), 0, 8); !errors.Is(err, errors.ErrCodeUnreachable) {
			t.Errorf("Dijkstra error = %v, want UNREACHABLE", err)
		}
		if _, err := AStar(gr.Graph(), 0, 8, gr.Manhattan(8, 10)); !errors.Is(err, errors.ErrCodeUnreachable) {
			t.Errorf("AStar error = %v, want UNREACHABLE", err)
		}
	})
}

func TestSealReroutes(t *testing.T) {
	gr := lattice(t, 3, 3)
	if err := gr.Seal(4); err != nil {
		t.Fatal(err)
	}
	g := gr.Graph()

	pred, err := Dijkstra(g, 0, 8)
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	path, err := PathTo(pred, 8, 0)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	for _, i := range path {
		if i == 4 {
			t.Errorf("path %v passes through sealed node 4", path)
		}
	}
	if cost, _ := Cost(g, Reverse(path)); cost != 40 {
		t.Errorf("cost = %d, want 40", cost)
	}
}

func TestNotFound(t *testing.T) {
	g := chain(t, 2)
	tests := []struct {
		name           string
		source, target int
	}{
		{"missing source", 5, 1},
		{"missing target", 0, 9},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Dijkstra(g, tt.source, tt.target); !errors.Is(err, errors.ErrCodeNotFound) {
				t.Errorf("Dijkstra error = %v, want NOT_FOUND", err)
			}
			if _, err := AStar(g, tt.source, tt.target, nil); !errors.Is(err, errors.ErrCodeNotFound) {
				t.Errorf("AStar error = %v, want NOT_FOUND", err)
			}
		})
	}
}

func TestSameSourceAndTarget(t *testing.T) {
	g := chain(t, 3)
	pred, err := Dijkstra(g, 1, 1)
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	path, err := PathTo(pred, 1, 1)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if diff := cmp.Diff([]int{1}, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestPathErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		code errors.Code
	}{
		{"Path missing target", func() error { _, err := Path(Predecessors{1: 0}, 4); return err }, errors.ErrCodeUnreachable},
		{"PathTo broken chain", func() error { _, err := PathTo(Predecessors{3: 2}, 3, 0); return err }, errors.ErrCodeUnreachable},
		{"Path cycle", func() error { _, err := Path(Predecessors{1: 2, 2: 1}, 1); return err }, errors.ErrCodeInternal},
		{"PathTo cycle", func() error { _, err := PathTo(Predecessors{1: 2, 2: 1}, 1, 0); return err }, errors.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCost(t *testing.T) {
	g := chain(t, 3)
	if err := g.Link(0, 1, 0); err != nil {
		t.Fatal(err)
	}

	got, err := Cost(g, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if got != 1 {
		t.Errorf("Cost = %d, want 1 (cheapest parallel edge)", got)
	}
	if _, err := Cost(g, []int{2, 1}); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Cost of missing hop: error = %v, want NOT_FOUND", err)
	}
	if got, _ := Cost(g, []int{2}); got != 0 {
		t.Errorf("Cost of single node = %d, want 0", got)
	}
}

func TestReverse(t *testing.T) {
	in := []int{3, 2, 1}
	if diff := cmp.Diff([]int{1, 2, 3}, Reverse(in)); diff != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", diff)
	}
	if in[0] != 3 {
		t.Error("Reverse modified its input")
	}
}

type recordingHooks struct {
	observability.NoopSearchHooks
	algorithms []string
	errs       []error
}

func (r *recordingHooks) OnSearchComplete(algorithm string, _ int, _ time.Duration, err error) {
	r.algorithms = append(r.algorithms, algorithm)
	r.errs = append(r.errs, err)
}

func TestHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetSearchHooks(rec)
	defer observability.Reset()

	g := chain(t, 3)
	_, _ = Dijkstra(g, 0, 2)
	_, _ = AStar(g, 2, 0, nil)

	if diff := cmp.Diff([]string{"dijkstra", "astar"}, rec.algorithms); diff != "" {
		t.Errorf("algorithms mismatch (-want +got):\n%s", diff)
	}
	if rec.errs[0] != nil {
		t.Errorf("dijkstra reported error %v", rec.errs[0])
	}
	if !errors.Is(rec.errs[1], errors.ErrCodeUnreachable) {
		t.Errorf("astar reported %v, want UNREACHABLE", rec.errs[1])
	}
}
