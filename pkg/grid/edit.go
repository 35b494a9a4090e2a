package grid

import (
	"strconv"
	"strings"

	"github.com/matzehuels/pathpane/pkg/errors"
)

// Edit changes the weight of one outgoing edge: the edge at position Pos in
// cell Node's edge list.
type Edit struct {
	Node   int
	Pos    int
	Weight int
}

// ParseEdit parses "node:pos:weight".
func ParseEdit(s string) (Edit, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Edit{}, errors.New(errors.ErrCodeInvalidInput, "weight edit %q: want node:pos:weight", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Edit{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "weight edit %q", s)
		}
		vals[i] = v
	}
	return Edit{Node: vals[0], Pos: vals[1], Weight: vals[2]}, nil
}

// ParseIndices parses a comma separated list of cell indices. Empty
// elements are skipped.
func ParseIndices(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cell index %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// Apply seals every cell in sealed and then applies edits in order.
// It stops at the first failure.
func (g *Grid) Apply(sealed []int, edits []Edit) error {
	for _, i := range sealed {
		if err := g.Seal(i); err != nil {
			return err
		}
	}
	for _, e := range edits {
		if err := g.SetEdgeWeight(e.Node, e.Pos, e.Weight); err != nil {
			return err
		}
	}
	return nil
}
