package pagination

import "sync"

// Registry keeps one Paginator per surface, created on first use.
type Registry struct {
	mu   sync.Mutex
	m    map[Scrollable]*Paginator
	opts []Option
}

// NewRegistry returns a registry whose lazily created paginators get opts.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{m: map[Scrollable]*Paginator{}, opts: opts}
}

// For returns the paginator attached to s, creating and attaching one if
// needed. s must be comparable.
func (r *Registry) For(s Scrollable) *Paginator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.m[s]; ok {
		return p
	}
	p := New(r.opts...)
	p.Attach(s)
	r.m[s] = p
	return p
}

// Set replaces the paginator for s, detaching the previous one.
func (r *Registry) Set(s Scrollable, p *Paginator) {
	r.mu.Lock()
	old := r.m[s]
	r.m[s] = p
	r.mu.Unlock()
	if old != nil && old != p {
		old.Detach()
	}
	p.Attach(s)
}

// Remove detaches and forgets the paginator for s.
func (r *Registry) Remove(s Scrollable) {
	r.mu.Lock()
	p := r.m[s]
	delete(r.m, s)
	r.mu.Unlock()
	if p != nil {
		p.Detach()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}
