package pagination

import "paginator/internal/scroll"

// Params is everything ShouldRequestNextPage looks at.
type Params struct {
	Context              *Context
	ScrollDirection      scroll.Direction
	ScrollableDirections scroll.Direction
	Bounds               scroll.Rect
	ContentSize          scroll.Size
	TargetOffset         scroll.Point
	LeadingScreens       float64
	Visible              bool
	RightToLeft          bool
	// FlipsHorizontally is set when the surface mirrors its content under a
	// right-to-left layout, so offsets keep growing toward the tail.
	FlipsHorizontally bool
}

// ShouldRequestNextPage decides whether the tail of the content is close
// enough to the visible region to ask for another page.
func ShouldRequestNextPage(p Params) bool {
	if !p.Visible {
		return false
	}
	// one request at a time
	if p.Context != nil && p.Context.IsFetching() {
		return false
	}
	if p.LeadingScreens <= 0 || p.Bounds.IsEmpty() {
		return false
	}
	if !p.ScrollableDirections.Contains(p.ScrollDirection) {
		return false
	}

	var viewLength, offset, contentLength float64
	if p.ScrollableDirections.Contains(scroll.Vertical) {
		viewLength = p.Bounds.Size.Height
		offset = p.TargetOffset.Y
		contentLength = p.ContentSize.Height
	} else {
		viewLength = p.Bounds.Size.Width
		offset = p.TargetOffset.X
		contentLength = p.ContentSize.Width
	}

	// not enough content to fill the view yet
	if contentLength < viewLength {
		return true
	}

	if towardHead(p.ScrollDirection, p.RightToLeft) {
		return false
	}

	triggerDistance := viewLength * p.LeadingScreens
	var remaining float64
	if !p.FlipsHorizontally && p.RightToLeft && p.ScrollableDirections.Contains(scroll.Horizontal) {
		remaining = offset
	} else {
		remaining = contentLength - viewLength - offset
	}
	return remaining <= triggerDistance
}

func towardHead(d scroll.Direction, rtl bool) bool {
	if d.Contains(scroll.Up) {
		return true
	}
	if rtl {
		return d.Contains(scroll.Right)
	}
	return d.Contains(scroll.Left)
}
