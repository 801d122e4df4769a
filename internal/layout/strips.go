package layout

import "github.com/axwm/axwm/internal/geometry"

// arrangeColumns gives every window an equal-width vertical strip.
func arrangeColumns(area geometry.Rect, count int) []geometry.Rect {
	widths := splitEven(area.Width(), count)
	rects := make([]geometry.Rect, count)
	x := area.X1()
	for i, w := range widths {
		rects[i] = geometry.NewRect(x, area.Y1(), w, area.Height())
		x += w
	}
	return rects
}

// arrangeRows gives every window an equal-height horizontal strip.
func arrangeRows(area geometry.Rect, count int) []geometry.Rect {
	heights := splitEven(area.Height(), count)
	rects := make([]geometry.Rect, count)
	y := area.Y1()
	for i, h := range heights {
		rects[i] = geometry.NewRect(area.X1(), y, area.Width(), h)
		y += h
	}
	return rects
}

// arrangeVerticalStack places window 0 in a primary column (left, or right
// when mirrored for RightMainVerticalStack) and evenly stacks the remainder
// in the other column.
func arrangeVerticalStack(area geometry.Rect, count int, mainOnRight bool) []geometry.Rect {
	rects := make([]geometry.Rect, count)
	if count == 1 {
		rects[0] = area
		return rects
	}

	primaryWidth := area.Width() / 2
	stackWidth := area.Width() - primaryWidth

	var primaryX, stackX int
	if mainOnRight {
		stackX = area.X1()
		primaryX = area.X1() + stackWidth
	} else {
		primaryX = area.X1()
		stackX = area.X1() + primaryWidth
	}

	rects[0] = geometry.NewRect(primaryX, area.Y1(), primaryWidth, area.Height())

	heights := splitEven(area.Height(), count-1)
	y := area.Y1()
	for i, h := range heights {
		rects[i+1] = geometry.NewRect(stackX, y, stackWidth, h)
		y += h
	}
	return rects
}

// arrangeHorizontalStack places window 0 in a primary top row and evenly
// stacks the remainder in the bottom row.
func arrangeHorizontalStack(area geometry.Rect, count int) []geometry.Rect {
	rects := make([]geometry.Rect, count)
	if count == 1 {
		rects[0] = area
		return rects
	}

	primaryHeight := area.Height() / 2
	stackHeight := area.Height() - primaryHeight

	rects[0] = geometry.NewRect(area.X1(), area.Y1(), area.Width(), primaryHeight)

	widths := splitEven(area.Width(), count-1)
	x := area.X1()
	stackY := area.Y1() + primaryHeight
	for i, w := range widths {
		rects[i+1] = geometry.NewRect(x, stackY, w, stackHeight)
		x += w
	}
	return rects
}
