package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/tables"
)

// State is the viewer's load state.
type State int

const (
	StateLoading State = iota
	StateResults
	StateError
)

// FocusedPane tracks which pane receives navigation keys.
type FocusedPane int

const (
	PaneChart FocusedPane = iota
	PaneTable
)

// SortMode is the order entries are displayed in.
type SortMode int

const (
	SortNone SortMode = iota
	SortValue
	SortLabel
)

func (s SortMode) String() string {
	switch s {
	case SortNone:
		return "insertion"
	case SortValue:
		return "value"
	case SortLabel:
		return "label"
	default:
		return "Unknown"
	}
}

// Loader produces the data set to display. It runs off the UI goroutine.
type Loader func() (*dataset.DataSet, error)

// dataSetMsg carries the result of a Loader.
type dataSetMsg struct {
	data     *dataset.DataSet
	err      error
	duration time.Duration
}

// Model is the Bubble Tea model of the interactive chart viewer.
type Model struct {
	source string
	load   Loader

	state    State
	err      error
	duration time.Duration

	data         *dataset.DataSet
	chart        *charts.BarChart
	chartContent string
	table        tables.Model

	sortMode  SortMode
	ascending bool

	width       int
	height      int
	focusedPane FocusedPane
	spinner     spinner.Model
}

// New returns a viewer that shows source in its status bar and calls load
// once on start and again on every reload.
func New(source string, load Loader) Model {
	return Model{
		source:      source,
		load:        load,
		state:       StateLoading,
		ascending:   true,
		focusedPane: PaneChart,
		spinner:     NewLoadingSpinner(),
	}
}

func (m Model) State() State {
	return m.state
}

func (m Model) Err() error {
	return m.err
}

// Chart returns the chart being displayed, or nil before the first load.
func (m Model) Chart() *charts.BarChart {
	return m.chart
}
