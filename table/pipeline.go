package table

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Direction is the sort direction of a column.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// next advances the header click cycle unsorted -> asc -> desc -> unsorted.
func (d Direction) next() Direction {
	switch d {
	case Unsorted:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unsorted
	}
}

// SortKey is one entry of the sort state.
type SortKey struct {
	Field     string
	Direction Direction
}

// ColumnFilter restricts a single column to rows whose rendered text
// contains Text.
type ColumnFilter struct {
	Field string
	Text  string
}

type matcher struct {
	needle string
}

func newMatcher(text string) matcher {
	return matcher{needle: cases.Fold().String(text)}
}

func (m matcher) empty() bool {
	return m.needle == ""
}

func (m matcher) match(text string) bool {
	return strings.Contains(cases.Fold().String(text), m.needle)
}

// filterRows keeps the rows that satisfy every column filter and, when a
// global filter is set, have at least one column whose rendered text
// contains it. The result never aliases rows.
func filterRows[T any](schema Schema[T], rows []T, global string, columns []ColumnFilter) []T {
	gm := newMatcher(global)

	type columnMatch struct {
		col Column[T]
		m   matcher
	}
	var cms []columnMatch
	for _, f := range columns {
		i := schema.Index(f.Field)
		m := newMatcher(f.Text)
		if i < 0 || m.empty() {
			continue
		}
		cms = append(cms, columnMatch{col: schema[i], m: m})
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, cm := range cms {
			if !cm.m.match(cm.col.Render(row)) {
				keep = false
				break
			}
		}
		if keep && !gm.empty() {
			keep = false
			for _, c := range schema {
				if gm.match(c.Render(row)) {
					keep = true
					break
				}
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

// sortRows orders rows in place by the first active sort key. The sort is
// stable so rows with equal values keep their fetch order.
func sortRows[T any](schema Schema[T], rows []T, sorting []SortKey) {
	for _, key := range sorting {
		if key.Direction == Unsorted {
			continue
		}
		i := schema.Index(key.Field)
		if i < 0 {
			continue
		}
		col := schema[i]
		desc := key.Direction == Descending
		slices.SortStableFunc(rows, func(a, b T) int {
			c := compareValues(col.Value(a), col.Value(b))
			if desc {
				return -c
			}
			return c
		})
		return
	}
}

// pageCount is ceil(n/size), never less than one.
func pageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// pageBounds returns the slice bounds of page index for n rows.
func pageBounds(n, index, size int) (int, int) {
	start := min(index*size, n)
	end := min(start+size, n)
	return start, end
}
