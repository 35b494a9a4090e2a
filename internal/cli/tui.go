package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pathpane/pkg/animate"
)

var (
	playerHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	playerFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// PlayerModel - interactive frame playback
// =============================================================================

// tickMsg advances playback. Ticks from an older generation are dropped so
// that pausing and restarting never leave two timers running.
type tickMsg struct{ gen int }

// PlayerModel is the bubbletea model that replays search frames.
type PlayerModel struct {
	Title   string
	Player  *animate.Player
	Markers animate.Markers
	Fill    string

	current string
	paused  bool
	gen     int
}

// NewPlayerModel creates a player model showing the first frame.
func NewPlayerModel(title string, p *animate.Player, m animate.Markers, fill string) PlayerModel {
	model := PlayerModel{Title: title, Player: p, Markers: m, Fill: fill}
	model.current, _ = p.Next()
	return model
}

// Done reports whether the final frame is on screen.
func (m PlayerModel) Done() bool {
	return m.Player.Position() >= m.Player.Len()
}

func (m PlayerModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Player.Delay(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m PlayerModel) Init() tea.Cmd {
	return m.tick()
}

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			m.gen++
			if !m.paused {
				return m, m.tick()
			}
		case "n", "right", "l":
			if f, ok := m.Player.Next(); ok {
				m.current = f
			}
		case "r":
			m.Player.Rewind()
			m.current, _ = m.Player.Next()
			m.paused = false
			m.gen++
			return m, m.tick()
		}
	case tickMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		f, ok := m.Player.Next()
		if !ok {
			return m, nil
		}
		m.current = f
		return m, m.tick()
	}
	return m, nil
}

func (m PlayerModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(playerFrameStyle.Render(colorize(m.current, m.Markers.Visited, m.Markers.Path, m.Fill)))
	b.WriteString("\n")

	state := "playing"
	switch {
	case m.Done():
		state = "done"
	case m.paused:
		state = "paused"
	}
	b.WriteString(playerHelpStyle.Render(fmt.Sprintf(
		"frame %d/%d · %s · space pause · n step · r restart · q quit",
		m.Player.Position(), m.Player.Len(), state)))
	b.WriteString("\n")
	return b.String()
}

// runPlayer plays frames in the terminal until the user quits or ctx ends.
func runPlayer(ctx context.Context, out io.Writer, model PlayerModel) error {
	_, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
