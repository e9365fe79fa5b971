package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"paginator/internal/pagination"
	"paginator/internal/scroll"
)

// surface adapts a viewport to pagination.Scrollable. Units are terminal
// cells: one row per line, one column per cell.
type surface struct {
	vp      viewport.Model
	lines   int
	widest  int
	visible bool
	rtl     bool

	mu       sync.Mutex
	nextID   int
	watchers map[int]func(pagination.OffsetChange)
}

func newSurface() *surface {
	return &surface{vp: viewport.New(0, 0), watchers: map[int]func(pagination.OffsetChange){}}
}

func (s *surface) Bounds() scroll.Rect {
	return scroll.Rect{
		Origin: s.offset(),
		Size:   scroll.Size{Width: float64(s.vp.Width), Height: float64(s.vp.Height)},
	}
}

func (s *surface) ContentSize() scroll.Size {
	return scroll.Size{Width: float64(s.widest), Height: float64(s.lines)}
}

func (s *surface) Visible() bool     { return s.visible }
func (s *surface) RightToLeft() bool { return s.rtl }

func (s *surface) offset() scroll.Point { return scroll.Point{Y: float64(s.vp.YOffset)} }

type observation struct {
	s  *surface
	id int
}

func (o observation) Invalidate() {
	o.s.mu.Lock()
	delete(o.s.watchers, o.id)
	o.s.mu.Unlock()
}

func (s *surface) ObserveContentOffset(fn func(pagination.OffsetChange)) pagination.Observation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.watchers[s.nextID] = fn
	return observation{s: s, id: s.nextID}
}

// Resize sets the visible region; a surface with an area counts as visible.
func (s *surface) Resize(width, height int) {
	s.vp.Width = width
	s.vp.Height = height
	s.visible = width > 0 && height > 0
}

// SetContent replaces the rendered lines, keeping the offset where possible.
func (s *surface) SetContent(content string) {
	s.lines = 0
	s.widest = 0
	if content != "" {
		for _, ln := range strings.Split(content, "\n") {
			s.lines++
			if w := lipgloss.Width(ln); w > s.widest {
				s.widest = w
			}
		}
	}
	y := s.vp.YOffset
	s.vp.SetContent(content)
	s.vp.SetYOffset(y)
}

// ScrollTo moves the first visible line to y and notifies observers when
// the offset changed.
func (s *surface) ScrollTo(y int) {
	old := s.offset()
	s.vp.SetYOffset(y)
	if now := s.offset(); now != old {
		s.notify(pagination.OffsetChange{Old: old, New: now})
	}
}

// Settle notifies observers without moving, so that a content change can
// trigger a request on its own (for example when the content is too short
// to fill the view).
func (s *surface) Settle() {
	o := s.offset()
	s.notify(pagination.OffsetChange{Old: o, New: o})
}

func (s *surface) notify(c pagination.OffsetChange) {
	s.mu.Lock()
	fns := make([]func(pagination.OffsetChange), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}

func (s *surface) View() string { return s.vp.View() }
