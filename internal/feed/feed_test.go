package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSlicePages(t *testing.T) {
	items := make([]Item, 45)
	p, err := slice(items, 1, 20)
	require.NoError(t, err)
	assert.Len(t, p.Items, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext())

	p, err = slice(items, 3, 20)
	require.NoError(t, err)
	assert.Len(t, p.Items, 5)
	assert.False(t, p.HasNext())

	_, err = slice(items, 4, 20)
	assert.ErrorIs(t, err, ErrNoMorePages)
	_, err = slice(items, 0, 20)
	assert.ErrorIs(t, err, ErrNoMorePages)
}

func TestMemoryProviderIsDeterministic(t *testing.T) {
	a := NewMemoryProvider(30, 0)
	b := NewMemoryProvider(30, 0)
	pa, err := a.FetchPage(context.Background(), 2, 10)
	require.NoError(t, err)
	pb, err := b.FetchPage(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
	assert.Equal(t, "Item 11", pa.Items[0].Title)
	assert.NotEmpty(t, pa.Items[0].ID)
}

func TestMemoryProviderHonoursCancellation(t *testing.T) {
	m := NewMemoryProvider(10, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.FetchPage(ctx, 1, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	doc := "items:\n  - id: a\n    title: Alpha\n  - id: b\n    title: Beta\n    rating: 4.5\n  - id: c\n    title: Gamma\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	p, err := f.FetchPage(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []Item{{ID: "a", Title: "Alpha"}, {ID: "b", Title: "Beta", Rating: 4.5}}, p.Items)
	assert.Equal(t, 2, p.TotalPages)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("items: []\n"), 0o644))
	_, err = LoadFile(empty)
	assert.Error(t, err)
}

func TestHTTPProvider(t *testing.T) {
	backing := NewMemoryProvider(25, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
		p, err := backing.FetchPage(r.Context(), n, size)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	h := NewHTTPProvider(srv.URL + "/feed")
	h.Client = srv.Client()
	p, err := h.FetchPage(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.Len(t, p.Items, 5)

	_, err = h.FetchPage(context.Background(), 9, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(404)")
}

func TestHTTPProviderBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	h := NewHTTPProvider(srv.URL)
	h.Client = srv.Client()
	_, err := h.FetchPage(context.Background(), 1, 10)
	assert.ErrorContains(t, err, "decode page 1")
}
