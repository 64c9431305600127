// Package client is the storefront's data layer: typed calls against the
// catalog API and a pager that accumulates products for endless scrolling.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clinicart/internal/domain"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrPincodeNotFound = errors.New("pincode not found")
)

// FetchError is any failed call that is not a plain 404: transport errors,
// non-2xx statuses and undecodable bodies.
type FetchError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the API rooted at baseURL (for example
// http://localhost:3000). A nil hc gets a client with a 10s timeout.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: hc}
}

func (c *Client) ProductsPage(ctx context.Context, page, limit int) (domain.ProductPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	var out domain.ProductPage
	err := c.get(ctx, "products page", "/api/products/paginated?"+q.Encode(), ErrNotFound, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id int) (domain.Product, error) {
	var out domain.Product
	err := c.get(ctx, "product", "/api/products/single/"+strconv.Itoa(id), ErrNotFound, &out)
	return out, err
}

func (c *Client) Inventory(ctx context.Context, id int) (domain.InventoryRecord, error) {
	var out domain.InventoryRecord
	err := c.get(ctx, "inventory", "/api/inventory/single/"+strconv.Itoa(id), ErrNotFound, &out)
	return out, err
}

func (c *Client) Pincode(ctx context.Context, pincode string) (domain.Delivery, error) {
	var out domain.Delivery
	err := c.get(ctx, "pincode", "/api/inventory/pincode/"+url.PathEscape(pincode), ErrPincodeNotFound, &out)
	return out, err
}

func (c *Client) get(ctx context.Context, op, path string, notFound error, dst any) error {
	u := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Op: op, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &FetchError{Op: op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FetchError{Op: op, URL: u, Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(msg)))}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &FetchError{Op: op, URL: u, Status: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
