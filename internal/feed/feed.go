// Package feed provides paged item sources for paginated lists.
package feed

import (
	"context"
	"errors"
)

// ErrNoMorePages is returned when a page past the last one is requested.
var ErrNoMorePages = errors.New("no more pages")

type Item struct {
	ID       string  `json:"id" yaml:"id"`
	Title    string  `json:"title" yaml:"title"`
	Overview string  `json:"overview,omitempty" yaml:"overview,omitempty"`
	Rating   float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// Page is one slice of a feed. Pages are numbered from 1.
type Page struct {
	Number     int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Items      []Item `json:"items"`
}

// HasNext reports whether another page follows this one.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Provider fetches pages of a feed.
type Provider interface {
	FetchPage(ctx context.Context, number, size int) (Page, error)
}

// slice cuts page number out of items.
func slice(items []Item, number, size int) (Page, error) {
	if size <= 0 {
		size = 20
	}
	total := (len(items) + size - 1) / size
	if number < 1 || number > total {
		return Page{Number: number, TotalPages: total}, ErrNoMorePages
	}
	start := (number - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]Item, end-start)
	copy(out, items[start:end])
	return Page{Number: number, TotalPages: total, Items: out}, nil
}
