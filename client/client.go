// Package client fetches record sets from the inventory backend.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/inventario/inventory-dashboard/records"
)

var (
	errNullBody     = errors.New("body is null")
	errBodyTooLarge = errors.New("response body too large")
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 32 << 20

// Client issues GET /api/{resource} requests against a backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client for the backend at baseURL. No request timeout is
// set; cancel the context to abandon a request.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Categories(ctx context.Context) ([]records.Category, error) {
	return list[records.Category](ctx, c, records.KindCategory)
}

func (c *Client) Suppliers(ctx context.Context) ([]records.Supplier, error) {
	return list[records.Supplier](ctx, c, records.KindSupplier)
}

func (c *Client) Products(ctx context.Context) ([]records.Product, error) {
	return list[records.Product](ctx, c, records.KindProduct)
}

func list[T records.Record](ctx context.Context, c *Client, kind records.Kind) ([]T, error) {
	resource := kind.Resource()
	url := c.baseURL + "/api/" + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Resource: resource, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "url", url, "error", err)
		return nil, &TransportError{Resource: resource, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err == nil && len(body) > maxBodySize {
		err = errBodyTooLarge
	}
	if err != nil {
		return nil, &TransportError{Resource: resource, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &payload)
		c.logger.Warn("backend returned an error", "url", url, "status", resp.StatusCode, "message", payload.Error)
		return nil, &TransportError{Resource: resource, StatusCode: resp.StatusCode, Message: payload.Error}
	}

	rows, err := decodeList[T](resource, body)
	if err != nil {
		c.logger.Warn("malformed response", "url", url, "error", err)
		return nil, err
	}
	c.logger.Debug("fetched records", "url", url, "rows", len(rows))
	return rows, nil
}

// decodeList parses body as a JSON array of T, validating every element.
func decodeList[T records.Record](resource string, body []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &SchemaError{Resource: resource, Index: -1, Err: err}
	}
	if raw == nil {
		return nil, &SchemaError{Resource: resource, Index: -1, Err: errNullBody}
	}

	out := make([]T, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal(r, &out[i]); err != nil {
			return nil, &SchemaError{Resource: resource, Index: i, Err: err}
		}
		if err := out[i].Validate(); err != nil {
			return nil, &SchemaError{Resource: resource, Index: i, Err: err}
		}
	}
	return out, nil
}
