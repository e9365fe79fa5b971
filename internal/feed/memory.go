package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MemoryProvider generates a deterministic synthetic feed.
type MemoryProvider struct {
	Total   int           // number of items in the feed
	Latency time.Duration // simulated per-page delay

	items []Item
}

// NewMemoryProvider returns a provider of total generated items.
func NewMemoryProvider(total int, latency time.Duration) *MemoryProvider {
	m := &MemoryProvider{Total: total, Latency: latency}
	m.items = make([]Item, total)
	ns := uuid.NameSpaceOID
	for i := range m.items {
		m.items[i] = Item{
			ID:       uuid.NewSHA1(ns, []byte(fmt.Sprintf("item-%d", i+1))).String(),
			Title:    fmt.Sprintf("Item %d", i+1),
			Overview: fmt.Sprintf("Generated entry number %d of %d.", i+1, total),
			Rating:   float64((i*7)%50) / 5,
		}
	}
	return m
}

func (m *MemoryProvider) FetchPage(ctx context.Context, number, size int) (Page, error) {
	if m.Latency > 0 {
		t := time.NewTimer(m.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Page{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	return slice(m.items, number, size)
}
