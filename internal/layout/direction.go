package layout

// Direction names one of the four cardinal focus-movement directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// IndexInDirection returns the index Direction d would move focus to from
// idx, given count tiles arranged under kind. The second return value is
// false when no tile exists in that direction, in which case the caller
// must leave focus unchanged (spec.md §4.3, invariant 6).
func IndexInDirection(kind Kind, idx, count int, d Direction) (int, bool) {
	if count <= 1 || idx < 0 || idx >= count {
		return 0, false
	}

	switch kind {
	case BSP:
		switch d {
		case Left:
			return bspLeft(idx, count)
		case Right:
			return bspRight(idx, count)
		case Up:
			return bspUp(idx, count)
		case Down:
			return bspDown(idx, count)
		}
	case Columns:
		switch d {
		case Left:
			if idx > 0 {
				return idx - 1, true
			}
		case Right:
			if idx < count-1 {
				return idx + 1, true
			}
		}
	case Rows:
		switch d {
		case Up:
			if idx > 0 {
				return idx - 1, true
			}
		case Down:
			if idx < count-1 {
				return idx + 1, true
			}
		}
	case VerticalStack, RightMainVerticalStack:
		return verticalStackDirection(idx, count, d, kind == RightMainVerticalStack)
	case HorizontalStack:
		return horizontalStackDirection(idx, count, d)

	case UltrawideVerticalStack:
		switch d {
		case Left:
			return ultrawideLeft(idx, count)
		case Right:
			return ultrawideRight(idx, count)
		case Up:
			return ultrawideUp(idx, count)
		case Down:
			return ultrawideDown(idx, count)
		}
	case Grid:
		switch d {
		case Left:
			return gridLeft(idx, count)
		case Right:
			return gridRight(idx, count)
		case Up:
			return gridUp(idx, count)
		case Down:
			return gridDown(idx, count)
		}
	case Scrolling:
		switch d {
		case Left:
			if idx > 0 {
				return idx - 1, true
			}
		case Right:
			if idx < count-1 {
				return idx + 1, true
			}
		}
	}
	return 0, false
}

// IsValidDirection reports whether moving focus in direction d would land
// on a different tile (spec.md §8 invariant 6).
func IsValidDirection(kind Kind, idx, count int, d Direction) bool {
	_, ok := IndexInDirection(kind, idx, count, d)
	return ok
}

// verticalStackDirection handles both VerticalStack (primary on the left)
// and RightMainVerticalStack (primary on the right, mirrored).
func verticalStackDirection(idx, count int, d Direction, mainOnRight bool) (int, bool) {
	toPrimary, toStack := Left, Right
	if mainOnRight {
		toPrimary, toStack = Right, Left
	}

	switch d {
	case toPrimary:
		if idx != 0 {
			return 0, true
		}
	case toStack:
		if idx == 0 && count > 1 {
			return 1, true
		}
	case Up:
		if idx > 1 {
			return idx - 1, true
		}
	case Down:
		if idx >= 1 && idx < count-1 {
			return idx + 1, true
		}
	}
	return 0, false
}

// horizontalStackDirection mirrors verticalStackDirection across the
// diagonal: Up moves to the primary row, Down moves into the stack, and
// Left/Right walk the stack.
func horizontalStackDirection(idx, count int, d Direction) (int, bool) {
	switch d {
	case Up:
		if idx != 0 {
			return 0, true
		}
	case Down:
		if idx == 0 && count > 1 {
			return 1, true
		}
	case Left:
		if idx > 1 {
			return idx - 1, true
		}
	case Right:
		if idx >= 1 && idx < count-1 {
			return idx + 1, true
		}
	}
	return 0, false
}
