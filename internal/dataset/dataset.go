package dataset

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/gittymo/charaph/internal/paint"
)

var (
	// ErrInvalidLabel is returned for labels that are empty after trimming.
	ErrInvalidLabel = errors.New("label cannot be empty")

	// ErrInvalidValue is returned for NaN, infinite or missing values.
	ErrInvalidValue = errors.New("value must be numeric")

	// ErrDuplicateLabel is returned when a label already exists, ignoring case.
	ErrDuplicateLabel = errors.New("duplicate data label")

	ErrInvalidArgument = paint.ErrInvalidArgument
)

// DataSet is an ordered collection of entries with case-insensitively unique
// labels. It tracks the smallest and largest value ever added.
type DataSet struct {
	entries  []*Entry
	minValue float64
	maxValue float64
}

func New() *DataSet {
	return &DataSet{}
}

// Add appends e. Adding an entry that is already present is a no-op.
func (d *DataSet) Add(e *Entry) error {
	if e == nil {
		return fmt.Errorf("nil entry: %w", ErrInvalidArgument)
	}
	key := foldLabel(e.label)
	for _, existing := range d.entries {
		if existing == e {
			return nil
		}
		if foldLabel(existing.label) == key {
			return fmt.Errorf("%q: %w", e.label, ErrDuplicateLabel)
		}
	}

	index := len(d.entries)
	e.startIndex, e.endIndex = index, index
	d.entries = append(d.entries, e)

	if index == 0 {
		d.minValue, d.maxValue = e.value, e.value
		return nil
	}
	if e.value < d.minValue {
		d.minValue = e.value
	}
	if e.value > d.maxValue {
		d.maxValue = e.value
	}
	return nil
}

// Get looks an entry up by label, ignoring case.
func (d *DataSet) Get(label string) (*Entry, bool) {
	key := foldLabel(label)
	for _, e := range d.entries {
		if foldLabel(e.label) == key {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (d *DataSet) Len() int {
	return len(d.entries)
}

// Entries returns the entries in display order. The slice is a copy; the
// entries are shared.
func (d *DataSet) Entries() []*Entry {
	return slices.Clone(d.entries)
}

// MinValue is the smallest value added so far, or 0 for an empty set.
func (d *DataSet) MinValue() float64 {
	return d.minValue
}

// MaxValue is the largest value added so far, or 0 for an empty set.
func (d *DataSet) MaxValue() float64 {
	return d.maxValue
}

// SortByValue orders entries by value. Equal values are always ordered by
// label ascending, whichever direction the values run.
func (d *DataSet) SortByValue(ascending bool) {
	slices.SortStableFunc(d.entries, func(a, b *Entry) int {
		c := cmp.Compare(a.value, b.value)
		if !ascending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(foldLabel(a.label), foldLabel(b.label))
	})
}

// SortByLabel orders entries by label, ignoring case.
func (d *DataSet) SortByLabel(ascending bool) {
	slices.SortStableFunc(d.entries, func(a, b *Entry) int {
		c := cmp.Compare(foldLabel(a.label), foldLabel(b.label))
		if !ascending {
			return -c
		}
		return c
	})
}
