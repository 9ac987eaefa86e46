package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fallback labels shown in place of absent values.
const (
	NotAvailable = "N/A"
	NoCategory   = "Sin categoría"
	NoSupplier   = "Sin proveedor"
)

// DefaultDateLayout renders dates the way the es-MX locale does (d/m/yyyy).
const DefaultDateLayout = "2/1/2006"

func formatText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// formatOr renders empty and absent values as fallback.
func formatOr(fallback string) func(any) string {
	return func(v any) string {
		if s := formatText(v); s != "" {
			return s
		}
		return fallback
	}
}

func formatYesNo(v any) string {
	if b, ok := v.(bool); ok && b {
		return "Sí"
	}
	return "No"
}

func formatMoney(v any) string {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return NotAvailable
	}
	return "$" + d.StringFixed(2)
}

func formatDate(layout string) func(any) string {
	return func(v any) string {
		t, ok := v.(time.Time)
		if !ok {
			return NotAvailable
		}
		return t.Format(layout)
	}
}

// optional dereferences s, mapping nil to an absent value.
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// money parses an exact decimal string. Unparsable input is absent.
func money(s string) any {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return d
}
