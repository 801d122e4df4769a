package layout

import "github.com/axwm/axwm/internal/geometry"

// arrangeGrid lays windows out in ceil(sqrt(count)) columns, distributing
// the remaining rows as evenly as possible across the remaining columns
// left to right (spec.md §4.2.1, verified against S3).
func arrangeGrid(area geometry.Rect, count int) []geometry.Rect {
	cols := ceilSqrt(count)
	colStarts, colRows := gridColumns(count, cols)

	colWidths := splitEven(area.Width(), cols)
	rects := make([]geometry.Rect, count)
	x := area.X1()
	for c := 0; c < cols; c++ {
		rowHeights := splitEven(area.Height(), colRows[c])
		y := area.Y1()
		for r := 0; r < colRows[c]; r++ {
			idx := colStarts[c] + r
			rects[idx] = geometry.NewRect(x, y, colWidths[c], rowHeights[r])
			y += rowHeights[r]
		}
		x += colWidths[c]
	}
	return rects
}

// gridColumns returns, for each column, the index at which it starts in
// insertion order and how many rows it holds. Each column absorbs
// remaining/remainingCols windows, computed greedily left to right.
func gridColumns(count, cols int) (starts, rows []int) {
	starts = make([]int, cols)
	rows = make([]int, cols)
	remaining := count
	remainingCols := cols
	idx := 0
	for c := 0; c < cols; c++ {
		r := remaining / remainingCols
		starts[c] = idx
		rows[c] = r
		idx += r
		remaining -= r
		remainingCols--
	}
	return starts, rows
}

func gridLocate(idx, count int) (col, row, colStart, colRows int) {
	cols := ceilSqrt(count)
	starts, rowCounts := gridColumns(count, cols)
	for c := 0; c < cols; c++ {
		if idx >= starts[c] && idx < starts[c]+rowCounts[c] {
			return c, idx - starts[c], starts[c], rowCounts[c]
		}
	}
	return 0, 0, 0, 0
}

func gridUp(idx, count int) (int, bool) {
	_, row, _, _ := gridLocate(idx, count)
	if row == 0 {
		return 0, false
	}
	return idx - 1, true
}

func gridDown(idx, count int) (int, bool) {
	_, row, colStart, colRows := gridLocate(idx, count)
	if row == colRows-1 {
		return 0, false
	}
	_ = colStart
	return idx + 1, true
}

// gridLeft moves to the same relative row in the column to the left. If the
// target column is shorter and the source tile sits at the bottom of its
// column, the target index is corrected so it lands on the target column's
// last row instead of overshooting (spec.md §4.2.1).
func gridLeft(idx, count int) (int, bool) {
	cols := ceilSqrt(count)
	col, row, colStart, colRows := gridLocate(idx, count)
	if col == 0 {
		return 0, false
	}
	starts, rowCounts := gridColumns(count, cols)
	targetCol := col - 1
	targetRows := rowCounts[targetCol]

	if targetRows < colRows && row == colRows-1 {
		return starts[targetCol] + targetRows - 1, true
	}
	if row >= targetRows {
		return starts[targetCol] + targetRows - 1, true
	}
	_ = colStart
	return starts[targetCol] + row, true
}

func gridRight(idx, count int) (int, bool) {
	cols := ceilSqrt(count)
	col, row, colStart, colRows := gridLocate(idx, count)
	if col >= cols-1 {
		return 0, false
	}
	starts, rowCounts := gridColumns(count, cols)
	targetCol := col + 1
	if targetCol >= len(starts) || rowCounts[targetCol] == 0 {
		return 0, false
	}
	targetRows := rowCounts[targetCol]

	if targetRows < colRows && row == colRows-1 {
		return starts[targetCol] + targetRows - 1, true
	}
	if row >= targetRows {
		return starts[targetCol] + targetRows - 1, true
	}
	_ = colStart
	return starts[targetCol] + row, true
}
