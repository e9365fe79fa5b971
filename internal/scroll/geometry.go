package scroll

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a content offset in surface units.
type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

// Rect is the visible region of a scrollable surface.
type Rect struct {
	Origin Point
	Size   Size
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool { return r.Size.Width <= 0 || r.Size.Height <= 0 }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }
func (s Size) String() string  { return fmt.Sprintf("%gx%g", s.Width, s.Height) }

// ParseSize reads "WxH".
func ParseSize(s string) (Size, error) {
	w, h, err := parsePair(s, "x")
	if err != nil {
		return Size{}, fmt.Errorf("parse size %q: %w", s, err)
	}
	return Size{Width: w, Height: h}, nil
}

// ParsePoint reads "X,Y".
func ParsePoint(s string) (Point, error) {
	x, y, err := parsePair(s, ",")
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

func parsePair(s, sep string) (float64, float64, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), sep)
	if !ok {
		return 0, 0, fmt.Errorf("missing %q separator", sep)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
