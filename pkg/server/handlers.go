package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/pathpane/pkg/animate"
	"github.com/matzehuels/pathpane/pkg/buildinfo"
	"github.com/matzehuels/pathpane/pkg/cache"
	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/grid"
	diagramio "github.com/matzehuels/pathpane/pkg/io"
)

// maxBodyBytes limits POST bodies.
const maxBodyBytes = 1 << 20

// FrameSeparator separates frames in /animate responses.
const FrameSeparator = "\f"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseGrid(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("structure") != "" {
		writeText(w, req.grid.Structure())
		return
	}
	writeText(w, req.grid.String())
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := s.parseGrid(q)
	if err != nil {
		writeError(w, err)
		return
	}
	algo := animate.AStar
	if v := q.Get("algo"); v != "" {
		if algo, err = animate.ParseAlgorithm(v); err != nil {
			writeError(w, err)
			return
		}
	}

	sol, err := animate.Solve(req.grid, req.from, req.to, algo, s.opts.Markers)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("X-Path-Cost", strconv.Itoa(sol.Cost))
	w.Header().Set("X-Path-Visited", strconv.Itoa(sol.Visited))
	writeText(w, sol.Text)
}

func (s *Server) handleAnimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := s.parseGrid(q)
	if err != nil {
		writeError(w, err)
		return
	}
	if n := req.grid.Len(); n > s.opts.MaxAnimateCells {
		writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"grid %dx%d has %d cells; animations are limited to %d", req.width, req.height, n, s.opts.MaxAnimateCells))
		return
	}

	key := s.keyer.FramesKey(cache.FramesKeyOpts{
		Algorithm: string(animate.Dijkstra),
		Width:     req.width,
		Height:    req.height,
		Fill:      req.fill,
		Source:    req.from,
		Target:    req.to,
		Visited:   s.opts.Markers.Visited,
		Path:      s.opts.Markers.Path,
		Sealed:    req.sealed,
		Weights:   q["weight"],
	})
	frames, err := cache.Frames(r.Context(), s.opts.Cache, key, s.opts.TTL, func() ([]string, error) {
		return animate.Frames(req.grid, req.from, req.to, s.opts.Markers)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("X-Frame-Count", strconv.Itoa(len(frames)))
	writeText(w, strings.Join(frames, FrameSeparator))
}

// handleDiagram draws the diagram described by a JSON document (see
// package pkg/io for the format).
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	doc, err := diagramio.ReadJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := doc.Build(s.opts.Diagram)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := d.Canvas(); err != nil {
		writeError(w, err)
		return
	}
	writeText(w, d.String())
}

type gridRequest struct {
	grid          *grid.Grid
	width, height int
	fill          string
	from, to      int
	sealed        []int
}

func (s *Server) parseGrid(q url.Values) (gridRequest, error) {
	var req gridRequest
	var err error
	if req.width, err = intParam(q, "w", s.opts.Width); err != nil {
		return req, err
	}
	if req.height, err = intParam(q, "h", s.opts.Height); err != nil {
		return req, err
	}
	req.fill = s.opts.Fill
	if v := q.Get("fill"); v != "" {
		req.fill = v
	}
	if req.grid, err = grid.New(req.width, req.height, req.fill); err != nil {
		return req, err
	}
	if req.from, err = intParam(q, "from", 0); err != nil {
		return req, err
	}
	if req.to, err = intParam(q, "to", req.grid.Len()-1); err != nil {
		return req, err
	}
	if req.sealed, err = grid.ParseIndices(q.Get("seal")); err != nil {
		return req, err
	}
	edits := make([]grid.Edit, 0, len(q["weight"]))
	for _, v := range q["weight"] {
		e, err := grid.ParseEdit(v)
		if err != nil {
			return req, err
		}
		edits = append(edits, e)
	}
	return req, req.grid.Apply(req.sealed, edits)
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter %s=%q", name, v)
	}
	return n, nil
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, body)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code != "" {
		w.Header().Set("X-Error-Code", string(code))
	}
	http.Error(w, errors.UserMessage(err), statusFor(code))
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnreachable, errors.ErrCodeCyclicGraph:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath, errors.ErrCodeOutOfBounds:
		return http.StatusBadRequest
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
