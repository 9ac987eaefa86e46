// Package dashboard selects which record kind is shown and feeds the table
// engine with data fetched for it.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/inventario/inventory-dashboard/records"
	"github.com/inventario/inventory-dashboard/table"
)

// Fetcher retrieves the full record set of each kind.
type Fetcher interface {
	Categories(ctx context.Context) ([]records.Category, error)
	Suppliers(ctx context.Context) ([]records.Supplier, error)
	Products(ctx context.Context) ([]records.Product, error)
}

// Request asks for the data of Kind on behalf of Epoch.
type Request struct {
	Epoch table.Epoch
	Kind  records.Kind
}

// Result is the outcome of a Request. Grid is nil when Err is set.
type Result struct {
	Request
	Grid Grid
	Err  error
}

// Dashboard is the view selector. It holds the active kind and the fetch
// lifecycle of its table. All methods except Fetch must be called from a
// single goroutine.
type Dashboard struct {
	fetcher  Fetcher
	schemas  Schemas
	pageSize int
	logger   *slog.Logger

	active records.Kind
	life   table.Lifecycle
	grid   Grid
}

type Option func(*Dashboard)

// WithPageSize sets the page size every freshly loaded table starts with.
func WithPageSize(n int) Option {
	return func(d *Dashboard) {
		if table.ValidPageSize(n) {
			d.pageSize = n
		}
	}
}

func WithSchemas(s Schemas) Option {
	return func(d *Dashboard) { d.schemas = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dashboard) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a dashboard showing products. Nothing is fetched until Mount.
func New(f Fetcher, opts ...Option) *Dashboard {
	d := &Dashboard{
		fetcher:  f,
		schemas:  DefaultSchemas,
		pageSize: table.DefaultPageSize,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		active:   records.KindProduct,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) Active() records.Kind { return d.active }
func (d *Dashboard) Status() table.Status { return d.life.Status() }
func (d *Dashboard) Message() string      { return d.life.Message() }

// Grid returns the loaded table, or nil unless the status is Ready.
func (d *Dashboard) Grid() Grid {
	if d.life.Status() != table.StatusReady {
		return nil
	}
	return d.grid
}

// Mount starts loading the active kind.
func (d *Dashboard) Mount() Request {
	return d.begin()
}

// SelectKind switches to k and starts loading it. Selecting the active kind
// is a no-op and reports false.
func (d *Dashboard) SelectKind(k records.Kind) (Request, bool) {
	if k == d.active && d.life.Status() != table.StatusIdle {
		return Request{}, false
	}
	d.active = k
	return d.begin(), true
}

func (d *Dashboard) begin() Request {
	d.grid = nil
	req := Request{Epoch: d.life.Begin(), Kind: d.active}
	d.logger.Debug("loading records", "kind", req.Kind, "epoch", req.Epoch)
	return req
}

// Fetch performs req against the fetcher. It only reads configuration fixed
// at construction, so it may run on any goroutine.
func (d *Dashboard) Fetch(ctx context.Context, req Request) Result {
	g, err := d.load(ctx, req.Kind)
	return Result{Request: req, Grid: g, Err: err}
}

func (d *Dashboard) load(ctx context.Context, kind records.Kind) (Grid, error) {
	switch kind {
	case records.KindCategory:
		rows, err := d.fetcher.Categories(ctx)
		if err != nil {
			return nil, err
		}
		return newGrid(kind, d.schemas.Categories, rows, d.pageSize), nil
	case records.KindSupplier:
		rows, err := d.fetcher.Suppliers(ctx)
		if err != nil {
			return nil, err
		}
		return newGrid(kind, d.schemas.Suppliers, rows, d.pageSize), nil
	case records.KindProduct:
		rows, err := d.fetcher.Products(ctx)
		if err != nil {
			return nil, err
		}
		return newGrid(kind, d.schemas.Products, rows, d.pageSize), nil
	}
	return nil, fmt.Errorf("%w: %d", records.ErrUnknownKind, kind)
}

// Apply installs res if it belongs to the current epoch. Results of
// superseded epochs are dropped and Apply reports false.
func (d *Dashboard) Apply(res Result) bool {
	if !d.life.Pending(res.Epoch) || res.Kind != d.active {
		d.logger.Debug("discarding stale result", "kind", res.Kind, "epoch", res.Epoch, "current", d.life.Epoch())
		return false
	}
	if res.Err != nil {
		d.logger.Warn("loading records failed", "kind", res.Kind, "error", res.Err)
		return d.life.Fail(res.Epoch, res.Err.Error())
	}
	d.grid = res.Grid
	d.logger.Debug("records loaded", "kind", res.Kind, "rows", res.Grid.Summary().Total)
	return d.life.Succeed(res.Epoch)
}

// Load mounts the dashboard on kind and fetches it synchronously.
func (d *Dashboard) Load(ctx context.Context, kind records.Kind) error {
	req, ok := d.SelectKind(kind)
	if !ok {
		return nil
	}
	d.Apply(d.Fetch(ctx, req))
	if d.Status() == table.StatusFailed {
		return fmt.Errorf("loading %s: %s", kind, d.Message())
	}
	return nil
}
