package table

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultPageSize is the page size a new table starts with.
const DefaultPageSize = 10

// ErrInvalidPageSize is returned for page sizes outside PageSizes.
var ErrInvalidPageSize = errors.New("invalid page size")

// PageSizes lists the selectable page sizes.
var PageSizes = []int{10, 20, 30, 40, 50}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// Table holds the data set of one record kind together with its sort,
// filter and pagination state. Every mutation re-derives the visible rows.
// A Table is not safe for concurrent use.
type Table[T any] struct {
	schema Schema[T]
	data   []T

	sorting       []SortKey
	globalFilter  string
	columnFilters []ColumnFilter
	pageIndex     int
	pageSize      int

	rows []T
}

// New returns a table over data. A page size outside PageSizes falls back
// to DefaultPageSize.
func New[T any](schema Schema[T], data []T, pageSize int) *Table[T] {
	if !ValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	t := &Table[T]{schema: schema, pageSize: pageSize}
	t.SetData(data)
	return t
}

// SetData replaces the data set wholesale and resets sort, filters and the
// page index. The page size is kept.
func (t *Table[T]) SetData(data []T) {
	t.data = data
	t.sorting = nil
	t.globalFilter = ""
	t.columnFilters = nil
	t.pageIndex = 0
	t.derive()
}

func (t *Table[T]) derive() {
	rows := filterRows(t.schema, t.data, t.globalFilter, t.columnFilters)
	sortRows(t.schema, rows, t.sorting)
	t.rows = rows
	t.clampPage()
}

func (t *Table[T]) clampPage() {
	t.pageIndex = max(0, min(t.pageIndex, t.PageCount()-1))
}

func (t *Table[T]) Schema() Schema[T] { return t.schema }
func (t *Table[T]) Headers() []string { return t.schema.Headers() }
func (t *Table[T]) Fields() []string  { return t.schema.Fields() }

// ToggleSort advances field through unsorted, ascending and descending.
// Any other sorted column is reset, so at most one field is sorted.
func (t *Table[T]) ToggleSort(field string) error {
	if t.schema.Index(field) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, field)
	}
	next := t.SortDirection(field).next()
	t.sorting = nil
	if next != Unsorted {
		t.sorting = []SortKey{{Field: field, Direction: next}}
	}
	t.pageIndex = 0
	t.derive()
	return nil
}

// SetSort sets the sort state directly. Unsorted clears it.
func (t *Table[T]) SetSort(field string, dir Direction) error {
	if t.schema.Index(field) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, field)
	}
	t.sorting = nil
	if dir != Unsorted {
		t.sorting = []SortKey{{Field: field, Direction: dir}}
	}
	t.pageIndex = 0
	t.derive()
	return nil
}

// Sorting returns a copy of the sort state.
func (t *Table[T]) Sorting() []SortKey {
	return slices.Clone(t.sorting)
}

// SortDirection returns the current direction of field.
func (t *Table[T]) SortDirection(field string) Direction {
	for _, k := range t.sorting {
		if k.Field == field {
			return k.Direction
		}
	}
	return Unsorted
}

// SetGlobalFilter changes the free-text filter and returns to the first page.
func (t *Table[T]) SetGlobalFilter(text string) {
	t.globalFilter = text
	t.pageIndex = 0
	t.derive()
}

func (t *Table[T]) GlobalFilter() string {
	return t.globalFilter
}

// SetColumnFilter filters a single column. Empty text removes the filter.
func (t *Table[T]) SetColumnFilter(field, text string) error {
	if t.schema.Index(field) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, field)
	}
	t.columnFilters = slices.DeleteFunc(t.columnFilters, func(f ColumnFilter) bool {
		return f.Field == field
	})
	if text != "" {
		t.columnFilters = append(t.columnFilters, ColumnFilter{Field: field, Text: text})
	}
	t.pageIndex = 0
	t.derive()
	return nil
}

// ColumnFilters returns a copy of the column filter state.
func (t *Table[T]) ColumnFilters() []ColumnFilter {
	return slices.Clone(t.columnFilters)
}

func (t *Table[T]) PageIndex() int { return t.pageIndex }
func (t *Table[T]) PageSize() int  { return t.pageSize }

// PageCount is the number of pages of the filtered rows, at least one.
func (t *Table[T]) PageCount() int {
	return pageCount(len(t.rows), t.pageSize)
}

// FilteredCount is the number of rows left after filtering.
func (t *Table[T]) FilteredCount() int { return len(t.rows) }

// TotalCount is the size of the unfiltered data set.
func (t *Table[T]) TotalCount() int { return len(t.data) }

func (t *Table[T]) CanPreviousPage() bool { return t.pageIndex > 0 }
func (t *Table[T]) CanNextPage() bool     { return t.pageIndex < t.PageCount()-1 }

func (t *Table[T]) FirstPage() {
	t.pageIndex = 0
}

// PreviousPage moves back one page. It reports false, leaving the page
// unchanged, when already on the first page.
func (t *Table[T]) PreviousPage() bool {
	if !t.CanPreviousPage() {
		return false
	}
	t.pageIndex--
	return true
}

// NextPage moves forward one page. It reports false, leaving the page
// unchanged, when already on the last page.
func (t *Table[T]) NextPage() bool {
	if !t.CanNextPage() {
		return false
	}
	t.pageIndex++
	return true
}

func (t *Table[T]) LastPage() {
	t.pageIndex = t.PageCount() - 1
}

// SetPage jumps to index, clamped into the valid range.
func (t *Table[T]) SetPage(index int) {
	t.pageIndex = index
	t.clampPage()
}

// SetPageSize changes the page size and clamps the current page into the
// new range without resetting it.
func (t *Table[T]) SetPageSize(n int) error {
	if !ValidPageSize(n) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, n)
	}
	t.pageSize = n
	t.clampPage()
	return nil
}

// Rows returns every filtered and sorted row.
func (t *Table[T]) Rows() []T {
	return slices.Clone(t.rows)
}

// PageRows returns the rows of the current page.
func (t *Table[T]) PageRows() []T {
	start, end := pageBounds(len(t.rows), t.pageIndex, t.pageSize)
	return slices.Clone(t.rows[start:end])
}

// Cells renders the current page in schema order.
func (t *Table[T]) Cells() [][]string {
	page := t.PageRows()
	out := make([][]string, len(page))
	for i, row := range page {
		out[i] = t.schema.RenderRow(row)
	}
	return out
}

// Summary describes the current page for display.
type Summary struct {
	PageIndex int
	PageCount int
	PageSize  int
	Showing   int
	Filtered  int
	Total     int
}

func (t *Table[T]) Summary() Summary {
	start, end := pageBounds(len(t.rows), t.pageIndex, t.pageSize)
	return Summary{
		PageIndex: t.pageIndex,
		PageCount: t.PageCount(),
		PageSize:  t.pageSize,
		Showing:   end - start,
		Filtered:  len(t.rows),
		Total:     len(t.data),
	}
}
