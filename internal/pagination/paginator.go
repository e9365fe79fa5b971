// Package pagination decides when a scrolling list is close enough to the end
// of its content to load the next page, and tells a delegate to do so.
package pagination

import (
	"sync"

	"go.uber.org/zap"

	"paginator/internal/scroll"
)

const (
	DefaultLeadingScreens = 2.0
	DefaultScrollable     = scroll.Vertical
)

// OffsetChange is a content offset transition observed on a surface.
type OffsetChange struct {
	Old, New scroll.Point
}

// Observation is the handle returned when observing a surface.
type Observation interface {
	Invalidate()
}

// Scrollable is a surface whose content offset can be observed.
type Scrollable interface {
	Bounds() scroll.Rect
	ContentSize() scroll.Size
	Visible() bool
	RightToLeft() bool
	ObserveContentOffset(fn func(OffsetChange)) Observation
}

// Flipper is implemented by surfaces whose layout mirrors horizontally under
// a right-to-left layout direction.
type Flipper interface {
	FlipsHorizontallyInOppositeLayoutDirection() bool
}

// Delegate loads the next page. It must call pc.Start when loading begins
// and pc.Finish (or pc.Cancel) once it ends.
type Delegate interface {
	PrefetchNextPage(p *Paginator, pc *Context)
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(p *Paginator, pc *Context)

func (f DelegateFunc) PrefetchNextPage(p *Paginator, pc *Context) { f(p, pc) }

// Gate may be implemented by a Delegate to veto a request that would
// otherwise be made.
type Gate interface {
	ShouldRequestNextPage(p *Paginator, pc *Context) bool
}

type Option func(*Paginator)

func WithScrollableDirections(d scroll.Direction) Option {
	return func(p *Paginator) { p.scrollable = d }
}

func WithLeadingScreens(n float64) Option {
	return func(p *Paginator) { p.leading = n }
}

func WithDelegate(d Delegate) Option {
	return func(p *Paginator) { p.delegate = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Paginator) {
		if l != nil {
			p.log = l
		}
	}
}

// Paginator observes one Scrollable and asks its Delegate for more content
// whenever the visible region comes within LeadingScreens of the tail.
type Paginator struct {
	mu         sync.Mutex
	enabled    bool
	scrollable scroll.Direction
	leading    float64
	delegate   Delegate
	pc         *Context
	gen        uint64 // bumped by every Attach, Detach and Close
	surface    Scrollable
	token      Observation
	log        *zap.Logger
}

func New(opts ...Option) *Paginator {
	p := &Paginator{
		enabled:    true,
		scrollable: DefaultScrollable,
		leading:    DefaultLeadingScreens,
		pc:         NewContext(),
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Context returns the context shared by every request of this paginator.
func (p *Paginator) Context() *Context { return p.pc }

func (p *Paginator) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Paginator) SetEnabled(v bool) {
	p.mu.Lock()
	p.enabled = v
	p.mu.Unlock()
}

func (p *Paginator) ScrollableDirections() scroll.Direction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrollable
}

func (p *Paginator) SetScrollableDirections(d scroll.Direction) {
	p.mu.Lock()
	p.scrollable = d
	p.mu.Unlock()
}

func (p *Paginator) LeadingScreens() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.leading
}

func (p *Paginator) SetLeadingScreens(n float64) {
	p.mu.Lock()
	p.leading = n
	p.mu.Unlock()
}

func (p *Paginator) Delegate() Delegate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.delegate
}

func (p *Paginator) SetDelegate(d Delegate) {
	p.mu.Lock()
	p.delegate = d
	p.mu.Unlock()
}

// Surface returns the attached scrollable, or nil.
func (p *Paginator) Surface() Scrollable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surface
}

// Attach stops observing any previous surface and starts observing s.
// An observation that completes after a later Attach, Detach or Close is
// invalidated at once.
func (p *Paginator) Attach(s Scrollable) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	old := p.token
	p.token = nil
	p.surface = s
	p.mu.Unlock()
	if old != nil {
		old.Invalidate()
	}

	tok := s.ObserveContentOffset(func(c OffsetChange) {
		p.HandleOffsetChange(s, c)
	})
	p.mu.Lock()
	if p.gen != gen {
		p.mu.Unlock()
		tok.Invalidate()
		return
	}
	p.token = tok
	p.mu.Unlock()
}

// Detach stops observing and drops the surface and the delegate.
func (p *Paginator) Detach() {
	p.mu.Lock()
	p.gen++
	old := p.token
	p.token = nil
	p.surface = nil
	p.delegate = nil
	p.mu.Unlock()
	if old != nil {
		old.Invalidate()
	}
}

// Close stops observing but keeps the surface and delegate.
func (p *Paginator) Close() {
	p.mu.Lock()
	p.gen++
	old := p.token
	p.token = nil
	p.mu.Unlock()
	if old != nil {
		old.Invalidate()
	}
}

// HandleOffsetChange evaluates one observed offset change on s and calls the
// delegate when a page should be requested. It reports whether it did.
func (p *Paginator) HandleOffsetChange(s Scrollable, c OffsetChange) bool {
	p.mu.Lock()
	delegate, enabled := p.delegate, p.enabled
	scrollable, leading := p.scrollable, p.leading
	p.mu.Unlock()

	if delegate == nil || !enabled {
		return false
	}

	dir := scroll.Between(c.Old, c.New)
	flips := false
	if f, ok := s.(Flipper); ok {
		flips = f.FlipsHorizontallyInOppositeLayoutDirection()
	}
	ok := ShouldRequestNextPage(Params{
		Context:              p.pc,
		ScrollDirection:      dir,
		ScrollableDirections: scrollable,
		Bounds:               s.Bounds(),
		ContentSize:          s.ContentSize(),
		TargetOffset:         c.New,
		LeadingScreens:       leading,
		Visible:              s.Visible(),
		RightToLeft:          s.RightToLeft(),
		FlipsHorizontally:    flips,
	})
	if !ok {
		return false
	}
	if g, isGate := delegate.(Gate); isGate && !g.ShouldRequestNextPage(p, p.pc) {
		p.log.Debug("next page vetoed", zap.Stringer("direction", dir))
		return false
	}
	p.log.Debug("requesting next page",
		zap.Stringer("direction", dir),
		zap.Stringer("offset", c.New),
		zap.Stringer("state", p.pc.State()))
	delegate.PrefetchNextPage(p, p.pc)
	return true
}
