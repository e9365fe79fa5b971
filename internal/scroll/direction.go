// Package scroll defines the scroll direction option set and the small value
// geometry reported by scrollable surfaces.
package scroll

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is an option set of scroll directions. Each primitive occupies a
// single bit; Horizontal and Vertical are unions of their primitives.
type Direction int8

const (
	None  Direction = 0
	Right Direction = 1 << 0
	Left  Direction = 1 << 1
	Up    Direction = 1 << 2
	Down  Direction = 1 << 3

	Horizontal = Left | Right
	Vertical   = Up | Down

	all = Horizontal | Vertical
)

// ErrUnknownDirection is returned by Parse for names it does not recognise.
var ErrUnknownDirection = errors.New("unknown scroll direction")

// primitives in bit order; String and Members rely on this order.
var primitives = []struct {
	d    Direction
	name string
}{
	{Right, "right"},
	{Left, "left"},
	{Up, "up"},
	{Down, "down"},
}

// Of builds a direction from any number of flags.
func Of(flags ...Direction) Direction {
	var d Direction
	for _, f := range flags {
		d |= f
	}
	return d
}

func (d Direction) Union(o Direction) Direction      { return d | o }
func (d Direction) Intersect(o Direction) Direction  { return d & o }
func (d Direction) Difference(o Direction) Direction { return d &^ o }

// Contains reports whether every bit of o is set in d.
func (d Direction) Contains(o Direction) bool { return d&o == o }

// Intersects reports whether d and o share at least one bit.
func (d Direction) Intersects(o Direction) bool { return d&o != 0 }

func (d Direction) IsEmpty() bool { return d == None }

// IsValid reports whether d only uses the four primitive bits.
func (d Direction) IsValid() bool { return d&^all == 0 }

func (d *Direction) Insert(o Direction) { *d |= o }
func (d *Direction) Remove(o Direction) { *d &^= o }

func (d Direction) HorizontalPart() Direction { return d & Horizontal }
func (d Direction) VerticalPart() Direction   { return d & Vertical }

// Members decomposes d into its primitive flags, in bit order.
func (d Direction) Members() []Direction {
	var out []Direction
	for _, p := range primitives {
		if d&p.d != 0 {
			out = append(out, p.d)
		}
	}
	return out
}

// Between derives the direction of travel from an old and a new content
// offset. Each axis contributes independently; an unchanged axis adds nothing.
func Between(from, to Point) Direction {
	var d Direction
	switch {
	case to.X > from.X:
		d |= Right
	case to.X < from.X:
		d |= Left
	}
	switch {
	case to.Y > from.Y:
		d |= Down
	case to.Y < from.Y:
		d |= Up
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	var parts []string
	for _, p := range primitives {
		if d&p.d != 0 {
			parts = append(parts, p.name)
		}
	}
	if rest := d &^ all; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Parse is the inverse of String. Names are case-insensitive and may be
// separated by "|", ",", "+" or spaces.
func Parse(s string) (Direction, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ',' || r == '+' || r == ' '
	})
	var d Direction
	for _, f := range fields {
		switch f {
		case "none":
		case "right":
			d |= Right
		case "left":
			d |= Left
		case "up":
			d |= Up
		case "down":
			d |= Down
		case "horizontal":
			d |= Horizontal
		case "vertical":
			d |= Vertical
		case "all":
			d |= all
		default:
			return None, fmt.Errorf("%w: %q", ErrUnknownDirection, f)
		}
	}
	return d, nil
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("scroll direction %d has undefined bits", int8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
