package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Shared styles.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// Cell styles used when a frame is shown in a terminal.
var (
	cellPath    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	cellVisited = lipgloss.NewStyle().Foreground(colorCyan)
	cellOther   = lipgloss.NewStyle().Foreground(colorDim)
)

const statsSep = " · "

// reporter writes one-line status messages about what a command did.
// Results go to stdout; status goes to the command's error stream so that
// piped output stays clean.
type reporter struct {
	w io.Writer
}

func (r reporter) line(mark lipgloss.Style, icon, msg string) {
	fmt.Fprintln(r.w, mark.Render(icon)+" "+msg)
}

func (r reporter) success(format string, args ...any) {
	r.line(lipgloss.NewStyle().Foreground(colorGreen), "✓", fmt.Sprintf(format, args...))
}

func (r reporter) warn(format string, args ...any) {
	r.line(StyleWarning, "!", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (r reporter) info(format string, args ...any) {
	r.line(lipgloss.NewStyle().Foreground(colorGray), "›", fmt.Sprintf(format, args...))
}

// detail prints an indented secondary line under the previous message.
func (r reporter) detail(format string, args ...any) {
	fmt.Fprintln(r.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (r reporter) file(path string) {
	fmt.Fprintln(r.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printStats prints a dimmed summary line such as "cost 40 · 5 cells",
// ending with whether the result came from the cache.
func printStats(w io.Writer, cached bool, parts ...string) {
	origin := StyleDim.Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	styled := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		styled = append(styled, StyleDim.Render(p))
	}
	styled = append(styled, origin)
	fmt.Fprintln(w, "  "+strings.Join(styled, StyleDim.Render(statsSep)))
}

// colorize highlights path and visited markers in a rendered frame. Fill
// cells and layout whitespace pass through; anything else, typically a
// sealed cell, is dimmed.
func colorize(frame, visited, path, fill string) string {
	var b strings.Builder
	for _, r := range frame {
		s := string(r)
		switch s {
		case path:
			b.WriteString(cellPath.Render(s))
		case visited:
			b.WriteString(cellVisited.Render(s))
		case fill, " ", "\n":
			b.WriteString(s)
		default:
			b.WriteString(cellOther.Render(s))
		}
	}
	return b.String()
}
