package dashboard

import (
	"github.com/inventario/inventory-dashboard/records"
	"github.com/inventario/inventory-dashboard/table"
)

// Grid is a loaded table of any record kind. It exposes the table engine
// operations with the record type erased so the view selector can hold
// whichever kind is active.
type Grid interface {
	Kind() records.Kind
	Headers() []string
	Fields() []string

	ToggleSort(field string) error
	SetSort(field string, dir table.Direction) error
	SortDirection(field string) table.Direction
	SetGlobalFilter(text string)
	GlobalFilter() string
	SetColumnFilter(field, text string) error
	ColumnFilters() []table.ColumnFilter

	FirstPage()
	PreviousPage() bool
	NextPage() bool
	LastPage()
	SetPage(index int)
	SetPageSize(n int) error
	CanPreviousPage() bool
	CanNextPage() bool

	Summary() table.Summary
	Cells() [][]string
}

type grid[T any] struct {
	*table.Table[T]
	kind records.Kind
}

func (g grid[T]) Kind() records.Kind { return g.kind }

func newGrid[T any](kind records.Kind, schema table.Schema[T], data []T, pageSize int) Grid {
	return grid[T]{Table: table.New(schema, data, pageSize), kind: kind}
}
