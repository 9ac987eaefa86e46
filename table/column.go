// Package table turns a slice of records and a column schema into a sorted,
// filtered and paginated view, and tracks the fetch lifecycle that feeds it.
package table

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when an operation names a field that is not
// part of the table's schema.
var ErrUnknownColumn = errors.New("unknown column")

// Column reads one field of T and turns it into display text.
// Value returns the raw value used for sorting; it must return a nil
// interface for absent values. Format renders that value.
type Column[T any] struct {
	Field  string
	Header string
	Value  func(T) any
	Format func(any) string
}

// Render returns the display text of the column for row.
func (c Column[T]) Render(row T) string {
	v := c.Value(row)
	if c.Format == nil {
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	return c.Format(v)
}

// Schema is the fixed, ordered column list of a record kind.
type Schema[T any] []Column[T]

// Index returns the position of field in the schema, or -1.
func (s Schema[T]) Index(field string) int {
	for i, c := range s {
		if c.Field == field {
			return i
		}
	}
	return -1
}

func (s Schema[T]) Headers() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Header
	}
	return out
}

func (s Schema[T]) Fields() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Field
	}
	return out
}

// RenderRow renders every column of row in schema order.
func (s Schema[T]) RenderRow(row T) []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Render(row)
	}
	return out
}
