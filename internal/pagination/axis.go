package pagination

import (
	"errors"
	"fmt"

	"paginator/internal/scroll"
)

// Axis is the single axis along which a list pages.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Directions returns the composite direction covering the axis.
func (a Axis) Directions() scroll.Direction {
	if a == AxisHorizontal {
		return scroll.Horizontal
	}
	return scroll.Vertical
}

// Contains reports whether d is one of the axis' primitives or its composite.
// Mixed or empty directions are never contained.
func (a Axis) Contains(d scroll.Direction) bool {
	switch a {
	case AxisVertical:
		return d == scroll.Up || d == scroll.Down || d == scroll.Vertical
	case AxisHorizontal:
		return d == scroll.Left || d == scroll.Right || d == scroll.Horizontal
	}
	return false
}

// ErrMixedAxes is returned by AxisFor for directions spanning both axes.
var ErrMixedAxes = errors.New("scroll directions span both axes")

// AxisFor returns the axis whose directions make up d. A list pages along
// one axis, so empty and mixed sets are rejected.
func AxisFor(d scroll.Direction) (Axis, error) {
	for _, a := range []Axis{AxisVertical, AxisHorizontal} {
		if a.Contains(d) {
			return a, nil
		}
	}
	if d.IsEmpty() {
		return AxisVertical, errors.New("no scroll direction given")
	}
	return AxisVertical, fmt.Errorf("%w: %v", ErrMixedAxes, d)
}
