package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gittymo/charaph/internal/render"
)

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	switch m.state {
	case StateLoading:
		s.WriteString(m.renderLoadingState())
	case StateError:
		s.WriteString(m.renderErrorState())
	case StateResults:
		s.WriteString(m.renderResultsContent())
	}
	s.WriteString("\n")

	s.WriteString(m.renderHelpBar())
	return s.String()
}

func (m Model) renderStatusBar() string {
	text := "  " + m.source
	if m.state == StateResults {
		direction := "asc"
		if !m.ascending {
			direction = "desc"
		}
		text += fmt.Sprintf("   Entries: %d   Sort: %s %s   Bars: %s   Loaded in %s",
			m.data.Len(), m.sortMode, direction, m.chart.Orientation(), formatDuration(m.duration))
	}
	return barStyle.Width(m.width).Render(text)
}

func (m Model) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading %s", m.spinner.View(), m.source))
}

func (m Model) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error())
}

func (m Model) renderResultsContent() string {
	if m.data.Len() == 0 {
		return WarningStyle.Padding(1, 2).Render("No entries to chart")
	}

	if m.focusedPane == PaneTable {
		return paneStyle.BorderForeground(focusedBorder).Render(m.table.View()) + "\n" + m.renderSelection()
	}
	return paneStyle.Render(m.chartContent)
}

// renderSelection describes the entry under the table cursor.
func (m Model) renderSelection() string {
	label, ok := m.table.HighlightedLabel()
	if !ok {
		return ""
	}
	e, ok := m.data.Get(label)
	if !ok {
		return ""
	}
	swatch := render.Style(e.FillStyle()).Render("██")
	return fmt.Sprintf("  %s %s = %s  (fill %s)", swatch, e.Label(), strconv.FormatFloat(e.Value(), 'g', -1, 64), e.FillStyle())
}

func (m Model) renderHelpBar() string {
	var helpText string
	switch {
	case m.state != StateResults:
		helpText = "  R: reload | q: quit"
	case m.focusedPane == PaneTable && m.table.Filtering():
		helpText = "  enter/esc: close filter"
	case m.focusedPane == PaneTable:
		helpText = "  j/k: navigate | h/l: page | /: filter | v/n: sort value/label | r: reverse | tab: chart | q: quit"
	default:
		helpText = "  v/n: sort value/label | r: reverse | o: orientation | t: labels | tab: table | R: reload | q: quit"
	}
	return barStyle.Width(m.width).Render(helpText)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
