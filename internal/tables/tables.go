package tables

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/render"
)

const (
	columnKeyColor    = "color"
	columnKeyLabel    = "label"
	columnKeyValue    = "value"
	columnKeyPosition = "position"

	minColumnWidth = 6

	// DefaultPageSize is the number of entries shown per table page.
	DefaultPageSize = 10
)

// Model is a filterable table of a data set's entries.
type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
	focused         bool
}

// New builds a table over the entries of ds in display order.
func New(ds *dataset.DataSet) Model {
	m := Model{
		filterTextInput: textinput.New(),
		focused:         true,
	}
	return m.WithDataSet(ds)
}

// WithDataSet rebuilds the rows, e.g. after the data set was re-sorted.
func (m Model) WithDataSet(ds *dataset.DataSet) Model {
	entries := ds.Entries()
	labels := make([]string, 0, len(entries))
	values := make([]string, 0, len(entries))
	rows := make([]teatable.Row, 0, len(entries))
	for _, e := range entries {
		value := strconv.FormatFloat(e.Value(), 'g', -1, 64)
		labels = append(labels, e.Label())
		values = append(values, value)
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnKeyColor:    render.Style(e.FillStyle()).Render("██"),
			columnKeyLabel:    e.Label(),
			columnKeyValue:    value,
			columnKeyPosition: strconv.Itoa(e.StartIndex()),
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnKeyColor, "", 4),
		teatable.NewColumn(columnKeyLabel, "Label", columnWidth(labels)).WithFiltered(true),
		teatable.NewColumn(columnKeyValue, "Value", columnWidth(values)).WithFiltered(true),
		teatable.NewColumn(columnKeyPosition, "#", 4),
	}

	m.table = teatable.
		New(columns).
		Filtered(true).
		Focused(m.focused).
		WithFooterVisibility(true).
		WithPageSize(DefaultPageSize).
		WithBaseStyle(lipgloss.NewStyle()).
		WithRows(rows).
		WithFilterInput(m.filterTextInput)
	return m
}

// columnWidth fits the widest cell, counted in runes, with room for the header.
func columnWidth(cells []string) int {
	width := 0
	for _, c := range cells {
		width = max(width, utf8.RuneCountInString(c))
	}
	return max(width+1, minColumnWidth)
}

// Focus toggles keyboard focus for row navigation.
func (m Model) Focus(focused bool) Model {
	m.focused = focused
	m.table = m.table.Focused(focused)
	return m
}

// Filtering reports whether the filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.filterTextInput.Focused()
}

// HighlightedLabel returns the label of the highlighted row, if any.
func (m Model) HighlightedLabel() (string, bool) {
	row := m.table.HighlightedRow()
	if row.Data == nil {
		return "", false
	}
	label, ok := row.Data[columnKeyLabel].(string)
	return label, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	// event to filter
	if m.filterTextInput.Focused() {
		switch keyMsg.String() {
		case "enter", "esc":
			m.filterTextInput.Blur()
		default:
			m.filterTextInput, _ = m.filterTextInput.Update(keyMsg)
		}
		m.table = m.table.WithFilterInput(m.filterTextInput)
		return m, nil
	}

	if keyMsg.String() == "/" {
		m.filterTextInput.Focus()
		return m, nil
	}

	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	if m.filterTextInput.Focused() {
		body.WriteString("\nFilter: " + m.filterTextInput.Value())
	}

	return body.String()
}
