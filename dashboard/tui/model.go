// Package tui is the interactive terminal front end of the inventory
// dashboard.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inventario/inventory-dashboard/dashboard"
	"github.com/inventario/inventory-dashboard/records"
	"github.com/inventario/inventory-dashboard/table"
)

const (
	maxColumnWidth = 32
	// chromeHeight is the number of lines drawn around the table body.
	chromeHeight = 10
)

// fetchedMsg carries a finished fetch back to the event loop.
type fetchedMsg struct {
	result dashboard.Result
}

// Model drives a Dashboard from keyboard input. Fetches run as commands
// off the event loop; everything else happens inside Update.
type Model struct {
	ctx  context.Context
	dash *dashboard.Dashboard
	keys keyMap

	tbl     btable.Model
	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	// editing is set while the filter input has focus. filterField is the
	// column being filtered, empty for the global filter.
	editing     bool
	filterField string
	focusCol    int

	width  int
	height int
}

// New returns a model over dash. The context bounds every fetch it starts.
func New(ctx context.Context, dash *dashboard.Dashboard) *Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accent)

	tbl := btable.New(
		btable.WithFocused(true),
		btable.WithKeyMap(tableKeyMap()),
		btable.WithStyles(tableStyles()),
		btable.WithHeight(table.DefaultPageSize),
	)

	return &Model{
		ctx:     ctx,
		dash:    dash,
		keys:    defaultKeyMap(),
		tbl:     tbl,
		input:   input,
		spinner: sp,
		help:    help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.mount())
}

func (m *Model) mount() tea.Cmd {
	req := m.dash.Mount()
	m.onKindChanged()
	return m.fetch(req)
}

func (m *Model) fetch(req dashboard.Request) tea.Cmd {
	ctx, dash := m.ctx, m.dash
	return func() tea.Msg {
		return fetchedMsg{result: dash.Fetch(ctx, req)}
	}
}

func (m *Model) selectKind(k records.Kind) tea.Cmd {
	req, ok := m.dash.SelectKind(k)
	if !ok {
		return nil
	}
	m.onKindChanged()
	return m.fetch(req)
}

func (m *Model) onKindChanged() {
	m.editing = false
	m.filterField = ""
	m.focusCol = 0
	m.input.Blur()
	m.input.SetValue("")
	m.refresh()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn
	switch msg := msg.(type) {
	case fetchedMsg:
		if m.dash.Apply(msg.result) {
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m, m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Products):
		return m, m.selectKind(records.KindProduct)
	case key.Matches(msg, m.keys.Categories):
		return m, m.selectKind(records.KindCategory)
	case key.Matches(msg, m.keys.Suppliers):
		return m, m.selectKind(records.KindSupplier)
	case key.Matches(msg, m.keys.NextKind):
		return m, m.selectKind(m.adjacentKind(1))
	case key.Matches(msg, m.keys.PrevKind):
		return m, m.selectKind(m.adjacentKind(-1))
	}

	g := m.dash.Grid()
	if g == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.startEditing("", g.GlobalFilter())
	case key.Matches(msg, m.keys.ColumnFilter):
		field := g.Fields()[m.focusCol]
		return m, m.startEditing(field, columnFilterText(g, field))
	case key.Matches(msg, m.keys.Cancel):
		g.SetGlobalFilter("")
		for _, f := range g.ColumnFilters() {
			_ = g.SetColumnFilter(f.Field, "")
		}
	case key.Matches(msg, m.keys.ColumnLeft):
		m.focusCol = max(0, m.focusCol-1)
	case key.Matches(msg, m.keys.ColumnRight):
		m.focusCol = min(len(g.Fields())-1, m.focusCol+1)
	case key.Matches(msg, m.keys.Sort):
		_ = g.ToggleSort(g.Fields()[m.focusCol])
	case key.Matches(msg, m.keys.FirstPage):
		g.FirstPage()
	case key.Matches(msg, m.keys.PrevPage):
		g.PreviousPage()
	case key.Matches(msg, m.keys.NextPage):
		g.NextPage()
	case key.Matches(msg, m.keys.LastPage):
		g.LastPage()
	case key.Matches(msg, m.keys.MorePerPage):
		_ = g.SetPageSize(stepPageSize(g.Summary().PageSize, 1))
	case key.Matches(msg, m.keys.FewerPerPage):
		_ = g.SetPageSize(stepPageSize(g.Summary().PageSize, -1))
	default:
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m *Model) startEditing(field, value string) tea.Cmd {
	m.editing = true
	m.filterField = field
	m.input.SetValue(value)
	m.input.CursorEnd()
	if field == "" {
		m.input.Prompt = "/ "
		m.input.Placeholder = dashboard.FilterPlaceholder(m.dash.Active().Title())
	} else {
		m.input.Prompt = m.dash.Grid().Headers()[m.focusCol] + ": "
		m.input.Placeholder = ""
	}
	return m.input.Focus()
}

// updateInput feeds a key to the filter input. The filter is applied as
// the text changes.
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.editing = false
		m.input.Blur()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.input.SetValue("")
		m.applyFilter("")
		m.editing = false
		m.input.Blur()
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.applyFilter(v)
	}
	return cmd
}

func (m *Model) applyFilter(text string) {
	g := m.dash.Grid()
	if g == nil {
		return
	}
	if m.filterField == "" {
		g.SetGlobalFilter(text)
	} else {
		_ = g.SetColumnFilter(m.filterField, text)
	}
	m.refresh()
}

func (m *Model) adjacentKind(step int) records.Kind {
	kinds := records.Kinds()
	i := slices.Index(kinds, m.dash.Active())
	return kinds[(i+step+len(kinds))%len(kinds)]
}

// refresh copies the current page of the active grid into the table widget.
func (m *Model) refresh() {
	g := m.dash.Grid()
	if g == nil {
		m.tbl.SetRows(nil)
		m.tbl.SetColumns(nil)
		return
	}

	labels := dashboard.HeaderLabels(g)
	labels[m.focusCol] = "[" + labels[m.focusCol] + "]"
	cells := g.Cells()

	columns := make([]btable.Column, len(labels))
	for i, l := range labels {
		w := lipgloss.Width(l)
		for _, row := range cells {
			w = max(w, lipgloss.Width(row[i]))
		}
		columns[i] = btable.Column{Title: l, Width: min(w, maxColumnWidth)}
	}

	rows := make([]btable.Row, len(cells))
	for i, c := range cells {
		rows[i] = btable.Row(c)
	}

	// Rows go first so they never outnumber the columns being swapped in.
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(columns)
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(m.tableHeight(g.Summary().PageSize))
}

func (m *Model) tableHeight(pageSize int) int {
	h := pageSize + 1
	if m.height > 0 {
		h = min(h, max(3, m.height-chromeHeight))
	}
	return h
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n")

	switch m.dash.Status() {
	case table.StatusLoading, table.StatusIdle:
		b.WriteString(placeholderStyle.Render(fmt.Sprintf("%s Cargando %s...", m.spinner.View(), strings.ToLower(m.dash.Active().Title()))))
		b.WriteString("\n")
	case table.StatusFailed:
		b.WriteString(errorStyle.Render(m.dash.Message()))
		b.WriteString("\n")
	case table.StatusReady:
		b.WriteString(m.viewFilter())
		b.WriteString("\n")
		b.WriteString(tableBoxStyle.Render(m.tbl.View()))
		b.WriteString("\n")
		b.WriteString(m.viewStatus())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) viewTabs() string {
	tabs := []string{titleStyle.Render("Inventario")}
	for i, k := range records.Kinds() {
		label := fmt.Sprintf("%d %s", i+1, k.Title())
		if k == m.dash.Active() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewFilter() string {
	if m.editing {
		return m.input.View()
	}
	g := m.dash.Grid()
	parts := make([]string, 0, 1)
	if text := g.GlobalFilter(); text != "" {
		parts = append(parts, fmt.Sprintf("/ %s", text))
	}
	headers := g.Headers()
	for _, f := range g.ColumnFilters() {
		if i := slices.Index(g.Fields(), f.Field); i >= 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", headers[i], f.Text))
		}
	}
	if len(parts) == 0 {
		return statusStyle.Render(dashboard.FilterPlaceholder(m.dash.Active().Title()))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m *Model) viewStatus() string {
	s := m.dash.Grid().Summary()
	return statusStyle.Render(strings.Join([]string{
		dashboard.ShowingText(s),
		dashboard.PageText(s),
		dashboard.PageSizeText(s.PageSize),
	}, " · "))
}

func columnFilterText(g dashboard.Grid, field string) string {
	for _, f := range g.ColumnFilters() {
		if f.Field == field {
			return f.Text
		}
	}
	return ""
}

// stepPageSize moves to the neighbouring entry of table.PageSizes.
func stepPageSize(current, step int) int {
	i := slices.Index(table.PageSizes, current)
	if i < 0 {
		return table.DefaultPageSize
	}
	i = min(max(i+step, 0), len(table.PageSizes)-1)
	return table.PageSizes[i]
}
