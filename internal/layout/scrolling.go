package layout

import "github.com/axwm/axwm/internal/geometry"

// arrangeScrolling gives every tile the full work-area width and height and
// positions them in a single horizontal filmstrip, offset so that the
// focused tile lands exactly on the work area. Every non-focused tile is
// therefore placed fully outside the work area by design: this is a
// deliberate, documented exception to the general containment invariant
// (spec.md §8 invariant 5 applies only to the focused tile under Scrolling).
func arrangeScrolling(area geometry.Rect, count, focused int, previous []geometry.Rect) []geometry.Rect {
	rects := make([]geometry.Rect, count)
	width := area.Width()
	for i := 0; i < count; i++ {
		left := area.X1() + (i-focused)*width
		rects[i] = geometry.NewRect(left, area.Y1(), width, area.Height())
	}
	return rects
}
