package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/gittymo/charaph/internal/paint"
	"gopkg.in/yaml.v2"
)

// Document is the on-disk form of a data set. JSON documents are accepted too,
// since they parse as YAML.
type Document struct {
	Title   string          `yaml:"title"`
	Entries []DocumentEntry `yaml:"entries"`
}

type DocumentEntry struct {
	Label  string   `yaml:"label"`
	Value  *float64 `yaml:"value"`
	Fill   string   `yaml:"fill,omitempty"`
	Stroke string   `yaml:"stroke,omitempty"`
}

// Load decodes a document from r and builds a data set from it. Entries
// without an explicit fill take the next colour from seq.
func Load(r io.Reader, seq *paint.HueSequence) (*DataSet, string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading data set: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("decoding data set: %w", err)
	}
	ds, err := doc.DataSet(seq)
	if err != nil {
		return nil, "", err
	}
	return ds, doc.Title, nil
}

// LoadFile is Load for a path; "-" reads standard input.
func LoadFile(path string, seq *paint.HueSequence) (*DataSet, string, error) {
	if path == "-" {
		return Load(os.Stdin, seq)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening data set: %w", err)
	}
	defer f.Close()
	return Load(f, seq)
}

// DataSet converts the document into a validated data set.
func (doc Document) DataSet(seq *paint.HueSequence) (*DataSet, error) {
	ds := New()
	for i, de := range doc.Entries {
		if de.Value == nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, de.Label, ErrInvalidValue)
		}
		e, err := NewEntry(de.Label, *de.Value, seq)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if de.Fill != "" {
			p, err := paint.New(de.Fill)
			if err != nil {
				return nil, fmt.Errorf("entry %d fill: %w", i, err)
			}
			_ = e.SetFillStyle(p)
		}
		if de.Stroke != "" {
			p, err := paint.New(de.Stroke)
			if err != nil {
				return nil, fmt.Errorf("entry %d stroke: %w", i, err)
			}
			_ = e.SetStrokeStyle(p)
		}
		if err := ds.Add(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return ds, nil
}
