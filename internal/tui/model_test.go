package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
)

func fruit(t *testing.T) *dataset.DataSet {
	t.Helper()
	seq := paint.NewHueSequence()
	ds := dataset.New()
	for _, s := range []struct {
		label string
		value float64
	}{{"bananas", 5}, {"apples", 2}, {"cherries", 9}} {
		e, err := dataset.NewEntry(s.label, s.value, seq)
		if err != nil {
			t.Fatalf("NewEntry() returned error: %v", err)
		}
		if err := ds.Add(e); err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
	}
	return ds
}

func labels(ds *dataset.DataSet) string {
	var out []string
	for _, e := range ds.Entries() {
		out = append(out, e.Label())
	}
	return strings.Join(out, ",")
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return got, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a viewer sized 80x24 showing fruit.
func loaded(t *testing.T) Model {
	t.Helper()
	m := New("fruit.yaml", nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, dataSetMsg{data: fruit(t), duration: 3 * time.Millisecond})
	return m
}

func TestNew(t *testing.T) {
	m := New("fruit.yaml", nil)

	if m.State() != StateLoading {
		t.Errorf("State() = %v, want %v", m.State(), StateLoading)
	}
	if m.Chart() != nil {
		t.Error("Chart() should be nil before loading")
	}
	if m.Init() == nil {
		t.Error("Init() should return a command")
	}
	if !strings.Contains(m.View(), "Loading fruit.yaml") {
		t.Errorf("View() = %q, want loading message", m.View())
	}
}

func TestLoadCmd(t *testing.T) {
	t.Run("runs loader", func(t *testing.T) {
		ds := fruit(t)
		m := New("x", func() (*dataset.DataSet, error) { return ds, nil })
		msg, ok := m.loadCmd()().(dataSetMsg)
		if !ok {
			t.Fatal("loadCmd() did not produce a dataSetMsg")
		}
		if msg.err != nil || msg.data != ds {
			t.Errorf("loadCmd() = %+v, want data set and no error", msg)
		}
	})

	t.Run("missing loader", func(t *testing.T) {
		msg := New("x", nil).loadCmd()().(dataSetMsg)
		if !errors.Is(msg.err, errNoLoader) {
			t.Errorf("err = %v, want %v", msg.err, errNoLoader)
		}
	})
}

func TestLoadError(t *testing.T) {
	m := New("fruit.yaml", nil)
	m, _ = update(t, m, dataSetMsg{err: errors.New("boom")})

	if m.State() != StateError {
		t.Errorf("State() = %v, want %v", m.State(), StateError)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("View() should show the error")
	}
}

func TestLoaded(t *testing.T) {
	m := loaded(t)

	if m.State() != StateResults {
		t.Fatalf("State() = %v, want %v", m.State(), StateResults)
	}
	chart := m.Chart()
	if chart.Width() != 76 || chart.Height() != 20 {
		t.Errorf("chart size = %vx%v, want 76x20", chart.Width(), chart.Height())
	}
	if !strings.Contains(m.chartContent, "apples") {
		t.Error("chart should show labels")
	}
	view := m.View()
	for _, want := range []string{"fruit.yaml", "Entries: 3", "Sort: insertion asc", "Bars: vertical", "3ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestSortKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"insertion order", nil, "bananas,apples,cherries"},
		{"by value", []string{"v"}, "apples,bananas,cherries"},
		{"by value descending", []string{"v", "r"}, "cherries,bananas,apples"},
		{"by label", []string{"n"}, "apples,bananas,cherries"},
		{"by label descending", []string{"r", "n"}, "cherries,bananas,apples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t)
			for _, k := range tt.keys {
				m, _ = update(t, m, key(k))
			}
			if got := labels(m.Chart().DataSet()); got != tt.want {
				t.Errorf("order = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDisplayKeys(t *testing.T) {
	m := loaded(t)

	m, _ = update(t, m, key("o"))
	if m.Chart().Orientation() != charts.Horizontal {
		t.Errorf("Orientation() = %v, want horizontal", m.Chart().Orientation())
	}
	m, _ = update(t, m, key("t"))
	if m.Chart().LabelsVisible() {
		t.Error("LabelsVisible() = true after t")
	}
	if strings.Contains(m.chartContent, "apples") {
		t.Error("chart should not show labels after t")
	}

	// a reload keeps the display settings
	m, _ = update(t, m, dataSetMsg{data: fruit(t)})
	if m.Chart().Orientation() != charts.Horizontal || m.Chart().LabelsVisible() {
		t.Error("reload reset the display settings")
	}
}

func TestFocus(t *testing.T) {
	m := loaded(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPane != PaneTable {
		t.Fatalf("focusedPane = %v, want %v", m.focusedPane, PaneTable)
	}
	if !strings.Contains(m.View(), "Label") {
		t.Error("table pane should show the table header")
	}
	if !strings.Contains(m.View(), "bananas = 5") {
		t.Error("table pane should describe the highlighted entry")
	}
	m, _ = update(t, m, key("j"))
	if !strings.Contains(m.View(), "apples = 2") {
		t.Error("selection should follow the table cursor")
	}

	// o belongs to the chart pane only when the filter is closed
	m, _ = update(t, m, key("/"))
	if !m.table.Filtering() {
		t.Fatal("filter should be open after /")
	}
	m, _ = update(t, m, key("o"))
	if m.Chart().Orientation() != charts.Vertical {
		t.Error("keys typed into the filter changed the chart")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focusedPane != PaneChart {
		t.Errorf("focusedPane = %v, want %v", m.focusedPane, PaneChart)
	}
}

func TestQuitAndReload(t *testing.T) {
	m := loaded(t)

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	m, cmd = update(t, m, key("R"))
	if m.State() != StateLoading || cmd == nil {
		t.Error("R should start a reload")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"microseconds", 500 * time.Microsecond, "500µs"},
		{"milliseconds", 500 * time.Millisecond, "500ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"zero", 0, "0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.duration); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}
