// Package render draws a grid as text for terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/gridplan"
)

// Symbol is the single-character glyph for a cell state.
func Symbol(s gridplan.State) rune {
	switch s {
	case gridplan.Empty:
		return '.'
	case gridplan.Blocked:
		return '#'
	case gridplan.Start:
		return 'S'
	case gridplan.Goal:
		return 'G'
	case gridplan.Path:
		return '*'
	}
	return '?'
}

// Text renders one line per row without styling.
func Text(g *gridplan.Grid) string {
	var b strings.Builder
	for _, row := range g.States() {
		for _, s := range row {
			b.WriteRune(Symbol(s))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Styles maps each state to a terminal style.
type Styles struct {
	Empty, Blocked, Start, Goal, Path lipgloss.Style
}

// DefaultStyles uses the editor palette: light blue floor, red walls, green
// start, yellow goal, blue path.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Bold(true)
	return Styles{
		Empty:   cell.Foreground(lipgloss.Color("#B8EDFF")),
		Blocked: cell.Background(lipgloss.Color("#E62937")).Foreground(lipgloss.Color("#FFFFFF")),
		Start:   cell.Background(lipgloss.Color("#00E430")).Foreground(lipgloss.Color("#000000")),
		Goal:    cell.Background(lipgloss.Color("#FDF900")).Foreground(lipgloss.Color("#000000")),
		Path:    cell.Foreground(lipgloss.Color("#0079F1")),
	}
}

func (st Styles) style(s gridplan.State) lipgloss.Style {
	switch s {
	case gridplan.Blocked:
		return st.Blocked
	case gridplan.Start:
		return st.Start
	case gridplan.Goal:
		return st.Goal
	case gridplan.Path:
		return st.Path
	}
	return st.Empty
}

// Styled renders the grid with colors.
func Styled(g *gridplan.Grid, st Styles) string {
	rows := make([]string, 0, g.Rows())
	for _, row := range g.States() {
		var b strings.Builder
		for _, s := range row {
			b.WriteString(st.style(s).Render(string(Symbol(s))))
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
