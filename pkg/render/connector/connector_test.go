package connector

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pathpane/pkg/errors"
)

func TestLayoutSingle(t *testing.T) {
	l := New([]int{3, 3}, DefaultSettings())
	if err := l.Connect(0, 1); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	w, h := l.Size()
	if w != 7 || h != 2 {
		t.Errorf("Size() = %d, %d, want 7, 2", w, h)
	}

	want := strings.Join([]string{
		" ---   ",
		"|   |  ",
	}, "\n")
	if diff := cmp.Diff(want, l.String()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutArrowsWithMultiplicity(t *testing.T) {
	l := New([]int{3, 3, 3}, Settings{Gap: 1, ConnectionSize: 1, Style: Arrow})
	// Added out of order; layout sorts them.
	for _, c := range []Connection{{0, 2}, {2, 0}, {0, 1}} {
		if err := l.Connect(c.From, c.To); err != nil {
			t.Fatalf("Connect(%d, %d): %v", c.From, c.To, err)
		}
	}

	wantOrder := []Connection{{0, 1}, {0, 2}, {2, 0}}
	if diff := cmp.Diff(wantOrder, l.Connections()); diff != "" {
		t.Errorf("connection order mismatch (-want +got):\n%s", diff)
	}

	want := strings.Join([]string{
		" ---       ",
		"|   |      ",
		"| ------   ",
		"||  |   |  ",
		"|| ------  ",
		"||v v   v| ",
	}, "\n")
	if diff := cmp.Diff(want, l.String()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutRightToLeft(t *testing.T) {
	l := New([]int{2, 2}, Settings{Gap: 2, ConnectionSize: 1, Style: Arrow})
	if err := l.Connect(1, 0); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	// from column 4, to column 0: top line covers [1, 4).
	want := " ---  \nv   | "
	if diff := cmp.Diff(want, l.String()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutConnectionSize(t *testing.T) {
	l := New([]int{5, 5}, Settings{Gap: 1, ConnectionSize: 2, Style: General})
	_ = l.Connect(0, 1)
	_ = l.Connect(0, 1)

	c, err := l.Canvas()
	if err != nil {
		t.Fatalf("Canvas: %v", err)
	}
	rows := c.Rows()
	// Second connection starts two columns further right on both boxes.
	if got := rows[3]; got != "| |   | |  " {
		t.Errorf("row 3 = %q", got)
	}
}

func TestConnectNotFound(t *testing.T) {
	l := New([]int{3, 3}, DefaultSettings())
	for _, c := range []Connection{{0, 2}, {-1, 0}, {5, 1}} {
		if err := l.Connect(c.From, c.To); !errors.Is(err, errors.ErrCodeNotFound) {
			t.Errorf("Connect(%d, %d) = %v, want NOT_FOUND", c.From, c.To, err)
		}
	}
	if len(l.Connections()) != 0 {
		t.Errorf("failed connects must not be recorded: %v", l.Connections())
	}
}

func TestLayoutOverflow(t *testing.T) {
	l := New([]int{1}, DefaultSettings())
	_ = l.Connect(0, 0)
	if _, err := l.Canvas(); !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("Canvas() = %v, want OUT_OF_BOUNDS", err)
	}
	if l.String() != "" {
		t.Errorf("String() should be empty on overflow")
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := New(nil, DefaultSettings())
	if w, h := l.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	if l.String() != "" {
		t.Errorf("String() = %q", l.String())
	}
}

func TestRender(t *testing.T) {
	got, err := Render([]int{3, 3}, []Connection{{0, 1}}, 1, Arrow)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := " ---   \n|   v  "; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if _, err := Render([]int{3}, []Connection{{0, 1}}, 1, Arrow); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Render with bad index = %v", err)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"general", General, false},
		{"", General, false},
		{"arrow", Arrow, false},
		{"dotted", General, true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, %v", tt.in, got, err)
		}
	}
	if Arrow.String() != "arrow" || General.String() != "general" {
		t.Errorf("String() = %q, %q", Arrow, General)
	}
}
