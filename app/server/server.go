// Package server serves the inventory backend API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/inventario/inventory-dashboard/app/catalog"
	"github.com/inventario/inventory-dashboard/app/categories"
	"github.com/inventario/inventory-dashboard/app/suppliers"
	"github.com/inventario/inventory-dashboard/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

// Config holds configuration for the API server.
type Config struct {
	Addr   string
	DB     *gorm.DB
	Logger *slog.Logger
}

// Server exposes the read-only inventory listings.
type Server struct {
	addr    string
	handler http.Handler
	logger  *slog.Logger
}

// Providers are the data sources behind the three listing endpoints.
type Providers struct {
	Products   catalog.ProductProvider
	Categories categories.CategoryProvider
	Suppliers  suppliers.SupplierProvider
}

// NewServer wires the gorm repositories into a router.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		addr: cfg.Addr,
		handler: NewRouter(Providers{
			Products:   models.NewProductsRepository(cfg.DB),
			Categories: models.NewCategoriesRepository(cfg.DB),
			Suppliers:  models.NewSuppliersRepository(cfg.DB),
		}, logger),
		logger: logger,
	}
}

// NewRouter mounts the API routes on a chi mux.
func NewRouter(p Providers, logger *slog.Logger) http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(logger),
		middleware.Recoverer,
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/productos", catalog.NewCatalogHandler(p.Products, logger).HandleGet)
		r.Get("/categorias", categories.NewCategoryHandler(p.Categories, logger).HandleGetAll)
		r.Get("/proveedores", suppliers.NewSupplierHandler(p.Suppliers, logger).HandleGetAll)
	})
	return r
}

// requestLogger logs each request through slog once it completes.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve listens on the configured address and blocks until the context is
// cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting API server", "addr", ln.Addr().String())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down API server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
