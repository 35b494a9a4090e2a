package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxGridCells bounds the number of nodes a grid may hold.
// Grids are rendered to the terminal, so anything larger is a typo.
const MaxGridCells = 1 << 16

// ValidateDimensions checks that a grid of w×h cells can be built.
func ValidateDimensions(w, h int) error {
	if w < 1 || h < 1 {
		return New(ErrCodeInvalidInput, "grid dimensions must be positive, got %dx%d", w, h)
	}
	if w > MaxGridCells/h {
		return New(ErrCodeInvalidInput, "grid %dx%d exceeds %d cells", w, h, MaxGridCells)
	}
	return nil
}

// ValidateIndex checks that i addresses one of n elements.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return New(ErrCodeNotFound, "index %d out of range [0,%d)", i, n)
	}
	return nil
}

// ValidateMarker checks that a payload used to paint grid cells is a single
// printable character. Wider markers would break column alignment.
func ValidateMarker(m string) error {
	if utf8.RuneCountInString(m) != 1 {
		return New(ErrCodeInvalidInput, "marker %q must be exactly one character", m)
	}
	r, _ := utf8.DecodeRuneInString(m)
	if !unicode.IsPrint(r) {
		return New(ErrCodeInvalidInput, "marker %q is not printable", m)
	}
	return nil
}

// ValidateLabel validates a box diagram label.
// Labels may span several lines but must not contain other control characters.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "label cannot be empty")
	}
	for _, r := range label {
		if r != '\n' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a user-provided output path.
// It rejects paths that escape the working directory via "..".
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidPath, "output path contains null byte")
	}
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) && (clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))) {
		return New(ErrCodeInvalidPath, "output path %q escapes the working directory", path)
	}
	return nil
}
