package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Handler serves the pages of a Provider in the format HTTPProvider reads:
// GET ?page=N&page_size=M answers with a JSON Page. A page past the end is
// answered with an empty page so clients can see total_pages.
type Handler struct {
	Provider    Provider
	DefaultSize int
	Log         *zap.Logger
}

func NewHandler(p Provider, defaultSize int, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Provider: p, DefaultSize: defaultSize, Log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	number, ok := intParam(r, "page", 1)
	if !ok || number < 1 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, ok := intParam(r, "page_size", h.DefaultSize)
	if !ok || size < 0 {
		http.Error(w, "invalid page_size", http.StatusBadRequest)
		return
	}

	p, err := h.Provider.FetchPage(r.Context(), number, size)
	switch {
	case errors.Is(err, ErrNoMorePages):
		p.Items = []Item{}
	case err != nil:
		h.Log.Warn("serve page failed", zap.Int("page", number), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	h.Log.Debug("served page",
		zap.Int("page", number),
		zap.Int("page_size", size),
		zap.Int("items", len(p.Items)))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		h.Log.Warn("write page failed", zap.Error(err))
	}
}

func intParam(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
