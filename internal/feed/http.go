package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	DefaultTimeout = 20 * time.Second
)

// HTTPProvider GETs pages from a JSON endpoint:
// <BaseURL>?page=N&page_size=M returning a Page.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{BaseURL: baseURL, Client: http.DefaultClient, Timeout: DefaultTimeout}
}

func (h *HTTPProvider) FetchPage(ctx context.Context, number, size int) (Page, error) {
	u, err := url.Parse(h.BaseURL)
	if err != nil {
		return Page{}, fmt.Errorf("parse feed url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(number))
	q.Set("page_size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	data, err := h.getJSON(ctx, u.String())
	if err != nil {
		return Page{}, err
	}
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return Page{}, fmt.Errorf("decode page %d: %w", number, err)
	}
	if p.Number == 0 {
		p.Number = number
	}
	if p.TotalPages > 0 && number > p.TotalPages {
		return p, ErrNoMorePages
	}
	return p, nil
}

func (h *HTTPProvider) getJSON(ctx context.Context, url string) ([]byte, error) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("GET %s: %s (%d)", url, string(b), resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
