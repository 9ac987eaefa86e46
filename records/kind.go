// Package records defines the three record kinds the inventory dashboard
// presents and their JSON wire shape.
package records

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the presentable record sets.
type Kind int

const (
	KindProduct Kind = iota
	KindCategory
	KindSupplier
)

// ErrUnknownKind is returned when a name does not match any record kind.
var ErrUnknownKind = errors.New("unknown record kind")

// Kinds returns every kind in tab order.
func Kinds() []Kind {
	return []Kind{KindProduct, KindCategory, KindSupplier}
}

// Resource is the path segment the backend serves the kind under.
func (k Kind) Resource() string {
	switch k {
	case KindCategory:
		return "categorias"
	case KindSupplier:
		return "proveedores"
	default:
		return "productos"
	}
}

// Title is the display title of the kind's table.
func (k Kind) Title() string {
	switch k {
	case KindCategory:
		return "Categorías"
	case KindSupplier:
		return "Proveedores"
	default:
		return "Productos"
	}
}

func (k Kind) String() string {
	return k.Resource()
}

// ParseKind accepts a resource name or its English alias.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "productos", "products", "product":
		return KindProduct, nil
	case "categorias", "categories", "category":
		return KindCategory, nil
	case "proveedores", "suppliers", "supplier":
		return KindSupplier, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
