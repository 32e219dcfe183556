package tui

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/render"
	"github.com/gittymo/charaph/internal/tables"
)

const (
	// chartChromeWidth is the pane border and padding around the chart.
	chartChromeWidth = 4
	// chartChromeHeight is the status bar, help bar and pane border.
	chartChromeHeight = 4
)

var errNoLoader = errors.New("no data source configured")

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.renderChart(), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case dataSetMsg:
		return m.handleDataSet(msg), nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.focusedPane == PaneTable && m.state == StateResults {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return dataSetMsg{err: errNoLoader}
		}
		start := time.Now()
		data, err := load()
		return dataSetMsg{data: data, err: err, duration: time.Since(start)}
	}
}

func (m Model) handleDataSet(msg dataSetMsg) Model {
	m.duration = msg.duration
	if msg.err != nil {
		m.state = StateError
		m.err = msg.err
		return m
	}

	opts := []charts.Option{
		charts.WithPadding(1),
		charts.WithLabelHeight(1),
	}
	// keep the display settings across reloads
	if m.chart != nil {
		opts = append(opts, charts.WithLabels(m.chart.LabelsVisible()))
		if m.chart.Orientation() == charts.Horizontal {
			opts = append(opts, charts.WithHorizontalBars())
		}
	}
	chart, err := charts.NewBarChart(msg.data, opts...)
	if err != nil {
		m.state = StateError
		m.err = err
		return m
	}

	m.state = StateResults
	m.err = nil
	m.data = msg.data
	m.chart = chart
	m.table = tables.New(msg.data).Focus(m.focusedPane == PaneTable)
	return m.applySort()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// the filter input gets every key while it is open
	if m.focusedPane == PaneTable && m.table.Filtering() {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "R":
		if m.state == StateLoading {
			return m, nil
		}
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	}

	if m.state != StateResults {
		return m, nil
	}

	switch key {
	case "tab":
		return m.toggleFocus(), nil
	case "esc":
		if m.focusedPane == PaneTable {
			return m.toggleFocus(), nil
		}
		return m, nil
	case "v":
		m.sortMode = SortValue
		return m.applySort(), nil
	case "n":
		m.sortMode = SortLabel
		return m.applySort(), nil
	case "r":
		m.ascending = !m.ascending
		return m.applySort(), nil
	case "o":
		if m.chart.Orientation() == charts.Vertical {
			_ = m.chart.SetOrientation(charts.Horizontal)
		} else {
			_ = m.chart.SetOrientation(charts.Vertical)
		}
		return m.renderChart(), nil
	case "t":
		m.chart.SetLabelsVisible(!m.chart.LabelsVisible())
		return m.renderChart(), nil
	}

	if m.focusedPane == PaneTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) toggleFocus() Model {
	if m.focusedPane == PaneChart {
		m.focusedPane = PaneTable
	} else {
		m.focusedPane = PaneChart
	}
	m.table = m.table.Focus(m.focusedPane == PaneTable)
	return m
}

// applySort reorders the shared data set, so both the chart and the table
// pick up the new order.
func (m Model) applySort() Model {
	switch m.sortMode {
	case SortNone:
		return m.renderChart()
	case SortValue:
		m.data.SortByValue(m.ascending)
	case SortLabel:
		m.data.SortByLabel(m.ascending)
	}
	m.table = m.table.WithDataSet(m.data)
	return m.renderChart()
}

func (m Model) renderChart() Model {
	if m.chart == nil || m.width <= 0 || m.height <= 0 {
		return m
	}

	cols := max(m.width-chartChromeWidth, 1)
	rows := max(m.height-chartChromeHeight, 1)
	if err := m.chart.SetSize(float64(cols), float64(rows)); err != nil {
		m.chartContent = ErrorStyle.Render(err.Error())
		return m
	}
	_ = m.chart.SetLabelWidth(float64(labelWidth(m.data, cols)))

	grid := render.NewTerminal(cols, rows)
	if err := m.chart.Paint(grid); err != nil {
		m.chartContent = ErrorStyle.Render(err.Error())
		return m
	}
	m.chartContent = grid.View()
	return m
}

// labelWidth fits the longest label, up to a third of the chart.
func labelWidth(data *dataset.DataSet, cols int) int {
	longest := 0
	for _, e := range data.Entries() {
		longest = max(longest, utf8.RuneCountInString(e.Label()))
	}
	return min(longest+1, cols/3)
}
