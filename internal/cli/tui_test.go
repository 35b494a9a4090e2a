package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pathpane/pkg/animate"
)

func newTestPlayerModel() PlayerModel {
	p := animate.NewPlayer([]string{"a", "b", "c"}, time.Millisecond)
	return NewPlayerModel("test", p, animate.DefaultMarkers(), ".")
}

func update(t *testing.T, m PlayerModel, msg tea.Msg) PlayerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PlayerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayerModelTicks(t *testing.T) {
	m := newTestPlayerModel()
	if m.current != "a" {
		t.Fatalf("first frame = %q, want a", m.current)
	}

	m = update(t, m, tickMsg{gen: m.gen})
	m = update(t, m, tickMsg{gen: m.gen})
	if m.current != "c" || !m.Done() {
		t.Errorf("after two ticks: frame %q done %v, want c true", m.current, m.Done())
	}

	m = update(t, m, tickMsg{gen: m.gen})
	if m.current != "c" {
		t.Errorf("tick past the end changed frame to %q", m.current)
	}
}

func TestPlayerModelPauseDropsStaleTicks(t *testing.T) {
	m := newTestPlayerModel()
	stale := m.gen

	m = update(t, m, key(" "))
	if !m.paused {
		t.Fatal("space did not pause")
	}
	m = update(t, m, tickMsg{gen: stale})
	if m.current != "a" {
		t.Errorf("stale tick advanced a paused player to %q", m.current)
	}

	m = update(t, m, key("n"))
	if m.current != "b" {
		t.Errorf("step while paused: frame %q, want b", m.current)
	}

	m = update(t, m, key(" "))
	m = update(t, m, tickMsg{gen: stale})
	if m.current != "b" {
		t.Errorf("tick from before the pause advanced to %q", m.current)
	}
}

func TestPlayerModelRestart(t *testing.T) {
	m := newTestPlayerModel()
	m = update(t, m, key("n"))
	m = update(t, m, key("n"))
	m = update(t, m, key("r"))
	if m.current != "a" || m.Player.Position() != 1 {
		t.Errorf("restart: frame %q position %d, want a 1", m.current, m.Player.Position())
	}
}

func TestPlayerModelQuit(t *testing.T) {
	m := newTestPlayerModel()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestPlayerModelView(t *testing.T) {
	view := newTestPlayerModel().View()
	for _, want := range []string{"test", "frame 1/3", "playing"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
