package errors

import (
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"single cell", 1, 1, false},
		{"square", 3, 3, false},
		{"wide row", 80, 1, false},
		{"at limit", MaxGridCells, 1, false},

		{"zero width", 0, 3, true},
		{"zero height", 3, 0, true},
		{"negative", -1, 4, true},
		{"too many cells", MaxGridCells, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateIndex(t *testing.T) {
	if err := ValidateIndex(0, 1); err != nil {
		t.Errorf("ValidateIndex(0, 1) = %v", err)
	}
	for _, i := range []int{-1, 1, 5} {
		err := ValidateIndex(i, 1)
		if !Is(err, ErrCodeNotFound) {
			t.Errorf("ValidateIndex(%d, 1) = %v, want NOT_FOUND", i, err)
		}
	}
}

func TestValidateMarker(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ascii", "#", false},
		{"letter", "o", false},
		{"unicode", "█", false},

		{"empty", "", true},
		{"two chars", "##", true},
		{"control", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarker(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMarker(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "db", false},
		{"multiline", "api\nv2", false},

		{"empty", "", true},
		{"tab", "a\tb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "grid.svg", false},
		{"nested", "out/grid.dot", false},
		{"absolute", "/tmp/grid.svg", false},
		{"dotdot inside name", "a..b.svg", false},

		{"empty", "", true},
		{"parent", "../grid.svg", true},
		{"only parent", "..", true},
		{"null byte", "a\x00.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
