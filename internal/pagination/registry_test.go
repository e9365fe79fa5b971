package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paginator/internal/scroll"
)

func TestRegistryCreatesOncePerSurface(t *testing.T) {
	r := NewRegistry(WithScrollableDirections(scroll.Horizontal))
	s := newFakeSurface(10, 10, 100, 10)

	p := r.For(s)
	assert.Same(t, p, r.For(s))
	assert.Equal(t, scroll.Horizontal, p.ScrollableDirections())
	assert.Same(t, s, p.Surface())
	assert.Equal(t, 1, s.observers())
	assert.Equal(t, 1, r.Len())

	other := newFakeSurface(10, 10, 100, 10)
	assert.NotSame(t, p, r.For(other))
	assert.Equal(t, 2, r.Len())
}

func TestRegistrySetAndRemove(t *testing.T) {
	r := NewRegistry()
	s := newFakeSurface(10, 10, 10, 100)
	first := r.For(s)

	replacement := New(WithLeadingScreens(3))
	r.Set(s, replacement)
	assert.Same(t, replacement, r.For(s))
	assert.Nil(t, first.Surface())
	assert.Same(t, s, replacement.Surface())
	assert.Equal(t, 1, s.observers())

	r.Remove(s)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, s.observers())
	assert.Nil(t, replacement.Surface())
}
