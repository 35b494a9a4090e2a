// Package io reads box diagram descriptions from JSON documents.
//
// # JSON Format
//
// Elements are listed in order and referenced by index:
//
//	{
//	  "nodes": ["api", "queue\nworker", "db"],
//	  "edges": [[0, 1], [1, 2], [0, 2]],
//	  "gap": 2,
//	  "arrow": true
//	}
//
// Required:
//   - nodes: element labels; a label may span several lines
//
// Optional:
//   - edges: [from, to] connections between element indices
//   - gap: columns between boxes
//   - connection_size: columns between connectors on one box
//   - arrow: draw arrow heads at connection targets
//
// Unknown keys are rejected. Layout keys that are omitted fall back to the
// settings passed to [Document.Build].
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to
// read from any io.Reader. The same format is accepted by the HTTP server's
// POST /diagram route. Documents only describe what to draw; rendered
// diagrams are not written back.
package io
