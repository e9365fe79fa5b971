package pagination

import (
	"sync"

	"paginator/internal/scroll"
)

type fakeSurface struct {
	mu       sync.Mutex
	bounds   scroll.Rect
	content  scroll.Size
	offset   scroll.Point
	hidden   bool
	rtl      bool
	flips    bool
	nextID   int
	watchers map[int]func(OffsetChange)
}

func newFakeSurface(w, h, contentW, contentH float64) *fakeSurface {
	return &fakeSurface{
		bounds:   scroll.Rect{Size: scroll.Size{Width: w, Height: h}},
		content:  scroll.Size{Width: contentW, Height: contentH},
		watchers: map[int]func(OffsetChange){},
	}
}

func (f *fakeSurface) Bounds() scroll.Rect      { return f.bounds }
func (f *fakeSurface) ContentSize() scroll.Size { return f.content }
func (f *fakeSurface) Visible() bool            { return !f.hidden }
func (f *fakeSurface) RightToLeft() bool        { return f.rtl }

func (f *fakeSurface) FlipsHorizontallyInOppositeLayoutDirection() bool { return f.flips }

type fakeToken struct {
	f  *fakeSurface
	id int
}

func (t fakeToken) Invalidate() {
	t.f.mu.Lock()
	delete(t.f.watchers, t.id)
	t.f.mu.Unlock()
}

func (f *fakeSurface) ObserveContentOffset(fn func(OffsetChange)) Observation {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.watchers[f.nextID] = fn
	return fakeToken{f: f, id: f.nextID}
}

func (f *fakeSurface) observers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers)
}

// scrollTo moves the offset and notifies observers.
func (f *fakeSurface) scrollTo(p scroll.Point) {
	f.mu.Lock()
	c := OffsetChange{Old: f.offset, New: p}
	f.offset = p
	fns := make([]func(OffsetChange), 0, len(f.watchers))
	for _, fn := range f.watchers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}

type recordingDelegate struct {
	calls int
	veto  bool
}

func (d *recordingDelegate) PrefetchNextPage(p *Paginator, pc *Context) {
	d.calls++
	pc.Start()
}

type gatedDelegate struct {
	recordingDelegate
}

func (d *gatedDelegate) ShouldRequestNextPage(p *Paginator, pc *Context) bool { return !d.veto }

// blockingSurface holds ObserveContentOffset until release is closed.
type blockingSurface struct {
	*fakeSurface
	entered chan struct{}
	release chan struct{}
}

func newBlockingSurface() *blockingSurface {
	return &blockingSurface{
		fakeSurface: newFakeSurface(100, 100, 100, 1000),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (b *blockingSurface) ObserveContentOffset(fn func(OffsetChange)) Observation {
	close(b.entered)
	<-b.release
	return b.fakeSurface.ObserveContentOffset(fn)
}
