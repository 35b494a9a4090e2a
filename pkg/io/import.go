package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/render/boxes"
	"github.com/matzehuels/pathpane/pkg/render/connector"
)

// Document is the JSON form of a box diagram.
type Document struct {
	Nodes          []string `json:"nodes"`
	Edges          [][2]int `json:"edges,omitempty"`
	Gap            *int     `json:"gap,omitempty"`
	ConnectionSize int      `json:"connection_size,omitempty"`
	Arrow          bool     `json:"arrow,omitempty"`
}

// ReadJSON decodes a document from r. Malformed JSON and unknown keys are
// INVALID_FORMAT errors. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode diagram")
	}
	return doc, nil
}

// ImportJSON reads the document stored at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.NotFound("diagram file %s does not exist", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Settings overlays the document's layout keys on base.
func (doc Document) Settings(base connector.Settings) (connector.Settings, error) {
	s := base
	if doc.Gap != nil {
		s.Gap = *doc.Gap
	}
	if doc.ConnectionSize > 0 {
		s.ConnectionSize = doc.ConnectionSize
	}
	if doc.Arrow {
		s.Style = connector.Arrow
	}
	if s.Gap < 0 {
		return connector.Settings{}, errors.New(errors.ErrCodeInvalidInput, "gap must not be negative")
	}
	return s, nil
}

// Build creates the diagram the document describes. Layout keys left out of
// the document come from base.
func (doc Document) Build(base connector.Settings) (*boxes.Diagram, error) {
	if len(doc.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a diagram needs at least one node")
	}
	s, err := doc.Settings(base)
	if err != nil {
		return nil, err
	}
	d := boxes.New(s)
	for _, label := range doc.Nodes {
		if _, err := d.AddElement(label); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		if err := d.Connect(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return d, nil
}
