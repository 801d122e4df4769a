package layout

import "github.com/axwm/axwm/internal/geometry"

// arrangeBSP implements the recursive-fibonacci binary space partition:
// at each depth, the remaining area is halved along the horizontal axis on
// even depths and the vertical axis on odd depths, the first half is
// assigned to the current tile, and the recursion continues into the
// second half for the remaining tiles (spec.md §4.2, verified against S2).
func arrangeBSP(area geometry.Rect, count int) []geometry.Rect {
	rects := make([]geometry.Rect, count)
	bspSplit(area, 0, count, 0, rects)
	return rects
}

func bspSplit(area geometry.Rect, index, remaining, depth int, out []geometry.Rect) {
	if remaining == 1 {
		out[index] = area
		return
	}

	if depth%2 == 0 {
		halfW := area.Width() / 2
		first := geometry.NewRect(area.X1(), area.Y1(), halfW, area.Height())
		second := geometry.NewRect(area.X1()+halfW, area.Y1(), area.Width()-halfW, area.Height())
		out[index] = first
		bspSplit(second, index+1, remaining-1, depth+1, out)
		return
	}

	halfH := area.Height() / 2
	first := geometry.NewRect(area.X1(), area.Y1(), area.Width(), halfH)
	second := geometry.NewRect(area.X1(), area.Y1()+halfH, area.Width(), area.Height()-halfH)
	out[index] = first
	bspSplit(second, index+1, remaining-1, depth+1, out)
}

// bspUp/Down/Left/Right implement the index-arithmetic neighbor tables from
// spec.md §4.2: up/down are given explicitly; left/right are their mirror
// under parity (spec.md §9 treats the two conditional forms as one rule —
// the same convention is applied here: left/right simply swap the odd/even
// roles that up/down use).
func bspUp(idx, count int) (int, bool) {
	if idx < 2 {
		return 0, false
	}
	if idx%2 == 1 {
		return idx - 1, true
	}
	return idx - 2, true
}

func bspDown(idx, count int) (int, bool) {
	if idx >= count-1 || idx%2 != 1 {
		return 0, false
	}
	return idx + 1, true
}

func bspLeft(idx, count int) (int, bool) {
	if idx < 2 {
		return 0, false
	}
	if idx%2 == 0 {
		return idx - 1, true
	}
	return idx - 2, true
}

func bspRight(idx, count int) (int, bool) {
	if idx >= count-1 || idx%2 != 0 {
		return 0, false
	}
	return idx + 1, true
}
