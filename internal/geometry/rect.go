// Package geometry provides the Rect primitive and the padding/margin/
// scaling operations the layout engine and topology model build on.
package geometry

// Rect is an axis-aligned rectangle in integer screen coordinates.
type Rect struct {
	Left   int
	Top    int
	Right  int // width
	Bottom int // height
}

// NewRect builds a Rect from left, top, width, height.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Right: width, Bottom: height}
}

// X1 returns the left edge.
func (r Rect) X1() int { return r.Left }

// Y1 returns the top edge.
func (r Rect) Y1() int { return r.Top }

// X2 returns the right edge (Left + width).
func (r Rect) X2() int { return r.Left + r.Right }

// Y2 returns the bottom edge (Top + height).
func (r Rect) Y2() int { return r.Top + r.Bottom }

// Width returns the rectangle's width.
func (r Rect) Width() int { return r.Right }

// Height returns the rectangle's height.
func (r Rect) Height() int { return r.Bottom }

// Area returns width * height.
func (r Rect) Area() int { return r.Right * r.Bottom }

// IsZero reports whether width or height is non-positive.
func (r Rect) IsZero() bool { return r.Right <= 0 || r.Bottom <= 0 }

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X1() >= r.X1() && other.Y1() >= r.Y1() &&
		other.X2() <= r.X2() && other.Y2() <= r.Y2()
}

// Padding adds space on all four sides, shrinking the rectangle. It is the
// inverse direction of Margin: left/top move inward, width/height shrink by
// 2*padding. Applying AddMargin with the same value to the result
// reproduces the original rectangle.
func (r Rect) AddPadding(padding int) Rect {
	return Rect{
		Left:   r.Left + padding,
		Top:    r.Top + padding,
		Right:  r.Right - 2*padding,
		Bottom: r.Bottom - 2*padding,
	}
}

// AddMargin grows the rectangle outward by margin on all four sides.
func (r Rect) AddMargin(margin int) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + 2*margin,
		Bottom: r.Bottom + 2*margin,
	}
}

// Adjustment holds independent per-side deltas, applied before neighbor
// computation (spec.md §4.2.2). Positive values grow the corresponding
// edge outward.
type Adjustment struct {
	Left, Top, Right, Bottom int
}

// IsZero reports whether the adjustment changes nothing.
func (a Adjustment) IsZero() bool {
	return a.Left == 0 && a.Top == 0 && a.Right == 0 && a.Bottom == 0
}

// Apply adds the adjustment to r. If the result would have non-positive
// width or height, the adjustment is silently ignored and r is returned
// unchanged (spec.md §4.2.2: "Resize failure ... is silently ignored; the
// tile falls back to un-adjusted").
func (r Rect) Apply(a Adjustment) Rect {
	adjusted := Rect{
		Left:   r.Left - a.Left,
		Top:    r.Top - a.Top,
		Right:  r.Right + a.Left + a.Right,
		Bottom: r.Bottom + a.Top + a.Bottom,
	}
	if adjusted.IsZero() {
		return r
	}
	return adjusted
}

// ScaleOffsets proportionally rescales four edge offsets (the strips
// subtracted from a display's full size to produce its work area) from an
// old display size to a new one, per spec.md §4.5.3 / S5.
func ScaleOffsets(oldSize, newSize Rect, left, top, right, bottom int) (int, int, int, int) {
	scaleX := func(v int) int {
		if oldSize.Width() == 0 {
			return v
		}
		return v * newSize.Width() / oldSize.Width()
	}
	scaleY := func(v int) int {
		if oldSize.Height() == 0 {
			return v
		}
		return v * newSize.Height() / oldSize.Height()
	}
	return scaleX(left), scaleY(top), scaleX(right), scaleY(bottom)
}
