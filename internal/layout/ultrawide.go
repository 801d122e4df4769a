package layout

import "github.com/axwm/axwm/internal/geometry"

// arrangeUltrawideVerticalStack produces three regions (left stack, center
// primary, right stack), with degenerate cases for 1 and 2 windows
// (spec.md §4.2). Windows beyond the primary alternate into the left and
// right stacks in insertion order: idx 1 -> left, idx 2 -> right, idx 3 ->
// left, idx 4 -> right, and so on.
func arrangeUltrawideVerticalStack(area geometry.Rect, count int) []geometry.Rect {
	rects := make([]geometry.Rect, count)

	if count == 1 {
		rects[0] = area
		return rects
	}
	if count == 2 {
		return arrangeColumns(area, 2)
	}

	leftWidth := area.Width() / 4
	rightWidth := area.Width() / 4
	centerWidth := area.Width() - leftWidth - rightWidth
	centerX := area.X1() + leftWidth
	rightX := area.X1() + leftWidth + centerWidth

	rects[0] = geometry.NewRect(centerX, area.Y1(), centerWidth, area.Height())

	var leftIdx, rightIdx []int
	for i := 1; i < count; i++ {
		if (i-1)%2 == 0 {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}

	leftHeights := splitEven(area.Height(), len(leftIdx))
	y := area.Y1()
	for i, idx := range leftIdx {
		rects[idx] = geometry.NewRect(area.X1(), y, leftWidth, leftHeights[i])
		y += leftHeights[i]
	}

	rightHeights := splitEven(area.Height(), len(rightIdx))
	y = area.Y1()
	for i, idx := range rightIdx {
		rects[idx] = geometry.NewRect(rightX, y, rightWidth, rightHeights[i])
		y += rightHeights[i]
	}

	return rects
}

func ultrawideColumnOf(idx, count int) int {
	if count <= 2 || idx == 0 {
		return 0
	}
	if (idx-1)%2 == 0 {
		return 1 // left stack
	}
	return 2 // right stack
}

func ultrawideUp(idx, count int) (int, bool) {
	col := ultrawideColumnOf(idx, count)
	if col == 0 {
		return 0, false
	}
	prev := idx - 2
	if prev < 1 {
		return 0, false
	}
	return prev, true
}

func ultrawideDown(idx, count int) (int, bool) {
	col := ultrawideColumnOf(idx, count)
	if col == 0 {
		return 0, false
	}
	next := idx + 2
	if next >= count {
		return 0, false
	}
	return next, true
}

func ultrawideLeft(idx, count int) (int, bool) {
	if count == 2 {
		if idx == 1 {
			return 0, true
		}
		return 0, false
	}
	switch ultrawideColumnOf(idx, count) {
	case 0:
		if count > 1 {
			return 1, true
		}
		return 0, false
	case 1:
		return 0, false
	default: // right stack -> center
		return 0, true
	}
}

func ultrawideRight(idx, count int) (int, bool) {
	if count == 2 {
		if idx == 0 {
			return 1, true
		}
		return 0, false
	}
	switch ultrawideColumnOf(idx, count) {
	case 0:
		if count > 2 {
			return 2, true
		}
		return 0, false
	case 1:
		return 0, true
	default: // right stack is already rightmost
		return 0, false
	}
}
