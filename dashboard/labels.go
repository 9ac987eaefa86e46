package dashboard

import (
	"fmt"

	"github.com/inventario/inventory-dashboard/table"
)

const (
	ascendingMarker  = " ▲"
	descendingMarker = " ▼"
)

// ShowingText is the record count line under the table.
func ShowingText(s table.Summary) string {
	return fmt.Sprintf("Mostrando %d de %d registros", s.Showing, s.Filtered)
}

// PageText is the pager position line.
func PageText(s table.Summary) string {
	return fmt.Sprintf("Página %d de %d", s.PageIndex+1, s.PageCount)
}

// PageSizeText labels a row count option.
func PageSizeText(n int) string {
	return fmt.Sprintf("Mostrar %d", n)
}

// FilterPlaceholder is the hint shown in an empty global filter.
func FilterPlaceholder(title string) string {
	return fmt.Sprintf("Buscar en %s...", title)
}

// HeaderLabels returns g's headers with the sorted column marked.
func HeaderLabels(g Grid) []string {
	headers := g.Headers()
	out := make([]string, len(headers))
	for i, field := range g.Fields() {
		switch g.SortDirection(field) {
		case table.Ascending:
			out[i] = headers[i] + ascendingMarker
		case table.Descending:
			out[i] = headers[i] + descendingMarker
		default:
			out[i] = headers[i]
		}
	}
	return out
}
