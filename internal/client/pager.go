package client

import (
	"context"
	"slices"
	"sync"

	"clinicart/internal/domain"
	"clinicart/internal/rules"
)

// Pager walks the product pages in order and keeps a merged, id-unique list.
// Once a page comes back shorter than the limit there is nothing more to
// fetch and HasMore stays false for the life of the pager.
type Pager struct {
	client *Client
	limit  int

	mu      sync.Mutex
	next    int
	hasMore bool
	items   []domain.Product
}

func NewPager(c *Client, limit int) *Pager {
	if limit < 1 {
		limit = rules.DefaultLimit
	}
	return &Pager{client: c, limit: limit, next: rules.DefaultPage, hasMore: true}
}

// Next fetches the following page and returns a copy of the merged list so
// far. A failed fetch leaves the pager where it was so the call can be retried.
func (p *Pager) Next(ctx context.Context) ([]domain.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasMore {
		return slices.Clone(p.items), nil
	}
	pg, err := p.client.ProductsPage(ctx, p.next, p.limit)
	if err != nil {
		return slices.Clone(p.items), err
	}
	p.items = MergeByID(p.items, pg.ProductsData)
	p.next++
	if len(pg.ProductsData) < p.limit {
		p.hasMore = false
	}
	return slices.Clone(p.items), nil
}

func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

func (p *Pager) Items() []domain.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.items)
}

// MergeByID appends the products in incoming whose ids are not yet present,
// keeping first-seen order. existing is not modified.
func MergeByID(existing, incoming []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(existing)+len(incoming))
	seen := make(map[int]struct{}, cap(out))
	for _, group := range [][]domain.Product{existing, incoming} {
		for _, p := range group {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
