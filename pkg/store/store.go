// Package store defines the lookup-source contract for database-backed color
// choices plus an in-memory implementation and a name registry used by
// settings documents.
package store

import (
	"context"
	"fmt"

	"github.com/goliatone/go-colorfield/pkg/palette"
)

// Filter keys accepted by the built-in sources.
const (
	FilterName       = "name"
	FilterBackground = "background"
	FilterText       = "text"
)

// Record is one user-defined color held by a lookup source.
type Record struct {
	Name       string
	Background string
	Text       string
}

// Value returns the attribute selected by the color type.
func (r Record) Value(colorType palette.ColorType) string {
	if colorType == palette.Text {
		return r.Text
	}
	return r.Background
}

// LookupSource is an external, queryable store of user-defined colors. All
// and Filtered must be safe for concurrent readers; neither writes.
type LookupSource interface {
	// All returns every record, in store order.
	All(ctx context.Context) ([]Record, error)
	// Filtered returns records matching every criteria entry. An empty
	// criteria map behaves like All.
	Filtered(ctx context.Context, criteria map[string]any) ([]Record, error)
}

// Memory is a fixed, in-memory lookup source. Useful for tests, demos, and
// hosts whose custom colors are known at startup.
type Memory struct {
	records []Record
}

var _ LookupSource = (*Memory)(nil)

// NewMemory constructs a memory source with a private copy of records.
func NewMemory(records ...Record) *Memory {
	out := make([]Record, len(records))
	copy(out, records)
	return &Memory{records: out}
}

// All returns every record in insertion order.
func (m *Memory) All(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Filtered returns the records matching every criteria entry. Criteria keys
// must be one of the Filter* constants; unknown keys are an error so typos in
// settings surface instead of silently matching nothing.
func (m *Memory) Filtered(ctx context.Context, criteria map[string]any) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(criteria) == 0 {
		return m.All(ctx)
	}
	if m == nil {
		return nil, nil
	}

	var out []Record
	for _, record := range m.records {
		matched, err := matches(record, criteria)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, record)
		}
	}
	return out, nil
}

func matches(record Record, criteria map[string]any) (bool, error) {
	for key, want := range criteria {
		var got string
		switch key {
		case FilterName:
			got = record.Name
		case FilterBackground:
			got = record.Background
		case FilterText:
			got = record.Text
		default:
			return false, fmt.Errorf("store: unknown filter field %q", key)
		}
		if got != fmt.Sprint(want) {
			return false, nil
		}
	}
	return true, nil
}
