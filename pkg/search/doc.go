// Package search finds shortest paths over a [graph.Graph].
//
// # Algorithms
//
// [Dijkstra] and [DijkstraTrace] explore the graph from a source in order of
// accumulated edge weight. The traced form also records which indices were
// touched on each iteration, which the animator replays frame by frame.
//
// [AStar] orders its open set by g + h, where h is a caller supplied
// [Heuristic]. With an admissible heuristic it finds a path of the same cost
// as Dijkstra while usually expanding fewer nodes. [Zero] turns it into a
// plain uniform-cost search.
//
// Both algorithms work on indices only and never read node payloads, so
// they are generic over the payload type. Sealed nodes can be reached but
// are never expanded.
//
// # Paths
//
// Searches return a [Predecessors] map. [PathTo] walks it from the target
// back to the source; [Reverse] flips the result into travel order and
// [Cost] sums the edge weights along it.
//
//	pred, err := search.AStar(gr.Graph(), 0, 8, gr.Manhattan(8, 10))
//	if err != nil {
//	    return err
//	}
//	path, _ := search.PathTo(pred, 8, 0)
//	cost, _ := search.Cost(gr.Graph(), search.Reverse(path))
//
// # Ties
//
// Frontier selection is a linear scan. [Dijkstra] resolves equal distances
// to the smallest index; [AStar] resolves equal f scores to the largest.
package search
