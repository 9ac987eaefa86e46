package tui

import (
	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
)

type keyMap struct {
	Products   key.Binding
	Categories key.Binding
	Suppliers  key.Binding
	NextKind   key.Binding
	PrevKind   key.Binding

	Search       key.Binding
	ColumnFilter key.Binding
	Accept       key.Binding
	Cancel       key.Binding

	ColumnLeft  key.Binding
	ColumnRight key.Binding
	Sort        key.Binding

	FirstPage    key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	LastPage     key.Binding
	MorePerPage  key.Binding
	FewerPerPage key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Products:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "productos")),
		Categories: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "categorías")),
		Suppliers:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "proveedores")),
		NextKind:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "siguiente vista")),
		PrevKind:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "vista anterior")),

		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		ColumnFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filtrar columna")),
		Accept:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "aceptar")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "limpiar")),

		ColumnLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "columna")),
		ColumnRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "columna")),
		Sort:        key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "ordenar")),

		FirstPage:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "primera")),
		PrevPage:     key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "anterior")),
		NextPage:     key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "siguiente")),
		LastPage:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "última")),
		MorePerPage:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "más filas")),
		FewerPerPage: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "menos filas")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextKind, k.Search, k.Sort, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Products, k.Categories, k.Suppliers, k.NextKind, k.PrevKind},
		{k.Search, k.ColumnFilter, k.Cancel, k.ColumnLeft, k.ColumnRight, k.Sort},
		{k.FirstPage, k.PrevPage, k.NextPage, k.LastPage, k.MorePerPage, k.FewerPerPage},
		{k.Help, k.Quit},
	}
}

// tableKeyMap keeps only row movement on the table; paging belongs to the
// dashboard pager.
func tableKeyMap() btable.KeyMap {
	km := btable.DefaultKeyMap()
	km.PageUp = key.NewBinding()
	km.PageDown = key.NewBinding()
	km.HalfPageUp = key.NewBinding()
	km.HalfPageDown = key.NewBinding()
	km.GotoTop = key.NewBinding()
	km.GotoBottom = key.NewBinding()
	return km
}
