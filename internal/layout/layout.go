// Package layout implements the pure geometric arrangement functions that
// translate a work area and a window count into a list of rectangles, plus
// the directional-navigation math used to move focus between tiles.
package layout

import (
	"math"

	"github.com/axwm/axwm/internal/geometry"
)

// Kind identifies one of the nine built-in layouts. Dispatch over Kind is a
// total function, not virtual dispatch (spec.md §9) — see Arrange.
type Kind int

const (
	BSP Kind = iota
	Columns
	Rows
	VerticalStack
	RightMainVerticalStack
	HorizontalStack
	UltrawideVerticalStack
	Grid
	Scrolling
)

func (k Kind) String() string {
	switch k {
	case BSP:
		return "bsp"
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	case VerticalStack:
		return "vertical_stack"
	case RightMainVerticalStack:
		return "right_main_vertical_stack"
	case HorizontalStack:
		return "horizontal_stack"
	case UltrawideVerticalStack:
		return "ultrawide_vertical_stack"
	case Grid:
		return "grid"
	case Scrolling:
		return "scrolling"
	default:
		return "custom"
	}
}

// FlipAxis controls mirroring applied to a computed layout.
type FlipAxis int

const (
	FlipNone FlipAxis = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

// Options carries the inputs to Arrange beyond work area and count.
type Options struct {
	// Adjustments holds one optional per-index resize adjustment, applied
	// before the layout's own geometry produces its final rectangles
	// (spec.md §4.2.2).
	Adjustments []geometry.Adjustment
	Flip        FlipAxis
	Focused     int
	// Previous holds the previously computed rectangles. It is passed to
	// Scrolling, but no built-in layout reads it: Scrolling's placement
	// depends only on count and Focused.
	Previous []geometry.Rect
}

// Arrange computes count rectangles within workArea for the given layout
// kind. It is a total function: for every kind and every count >= 1 it
// returns exactly count rectangles (spec.md §8 property 5).
func Arrange(kind Kind, workArea geometry.Rect, count int, opts Options) []geometry.Rect {
	if count < 1 {
		return nil
	}

	var rects []geometry.Rect
	switch kind {
	case BSP:
		rects = arrangeBSP(workArea, count)
	case Columns:
		rects = arrangeColumns(workArea, count)
	case Rows:
		rects = arrangeRows(workArea, count)
	case VerticalStack:
		rects = arrangeVerticalStack(workArea, count, false)
	case RightMainVerticalStack:
		rects = arrangeVerticalStack(workArea, count, true)
	case HorizontalStack:
		rects = arrangeHorizontalStack(workArea, count)
	case UltrawideVerticalStack:
		rects = arrangeUltrawideVerticalStack(workArea, count)
	case Grid:
		rects = arrangeGrid(workArea, count)
	case Scrolling:
		rects = arrangeScrolling(workArea, count, opts.Focused, opts.Previous)
	default:
		rects = arrangeColumns(workArea, count)
	}

	rects = applyAdjustments(rects, opts.Adjustments)
	rects = applyFlip(workArea, rects, opts.Flip)
	return rects
}

func applyAdjustments(rects []geometry.Rect, adjustments []geometry.Adjustment) []geometry.Rect {
	if len(adjustments) == 0 {
		return rects
	}
	out := make([]geometry.Rect, len(rects))
	for i, r := range rects {
		if i < len(adjustments) && !adjustments[i].IsZero() {
			out[i] = r.Apply(adjustments[i])
		} else {
			out[i] = r
		}
	}
	return out
}

func applyFlip(workArea geometry.Rect, rects []geometry.Rect, flip FlipAxis) []geometry.Rect {
	if flip == FlipNone {
		return rects
	}
	out := make([]geometry.Rect, len(rects))
	for i, r := range rects {
		out[i] = r
		if flip == FlipHorizontal || flip == FlipBoth {
			mirroredLeft := workArea.X1() + (workArea.X2() - r.X2())
			out[i].Left = mirroredLeft
		}
		if flip == FlipVertical || flip == FlipBoth {
			mirroredTop := workArea.Y1() + (workArea.Y2() - r.Y2())
			out[i].Top = mirroredTop
		}
	}
	return out
}

func splitEven(total, n int) []int {
	if n <= 0 {
		return nil
	}
	base := total / n
	remainder := total % n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}

func ceilSqrt(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}
