// Package ring implements the ordered, focus-tracking sequence that every
// higher layer of the topology (containers, workspaces, monitors) is built
// from.
package ring

// Ring is an ordered sequence of elements with a single distinguished
// focused index. A zero-length Ring reports no focused element; any
// non-empty Ring always has its focus index within [0, len).
type Ring[T any] struct {
	elements []T
	focused  int
}

// New returns an empty Ring.
func New[T any]() *Ring[T] {
	return &Ring[T]{}
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int {
	return len(r.elements)
}

// IsEmpty reports whether the ring has no elements.
func (r *Ring[T]) IsEmpty() bool {
	return len(r.elements) == 0
}

// Elements returns the underlying slice. Callers must not retain it across
// a mutation.
func (r *Ring[T]) Elements() []T {
	return r.elements
}

// FocusedIndex returns the current focused index and whether one exists.
func (r *Ring[T]) FocusedIndex() (int, bool) {
	if r.IsEmpty() {
		return 0, false
	}
	return r.focused, true
}

// Focused returns the focused element, if any.
func (r *Ring[T]) Focused() (T, bool) {
	var zero T
	if r.IsEmpty() {
		return zero, false
	}
	return r.elements[r.focused], true
}

// FocusedMut returns a pointer to the focused element's slot so the caller
// can mutate it in place, if any.
func (r *Ring[T]) FocusedMut() (*T, bool) {
	if r.IsEmpty() {
		return nil, false
	}
	return &r.elements[r.focused], true
}

// AppendBack appends an element to the end of the ring. It does not change
// the focused index unless the ring was previously empty, in which case the
// new element becomes focused.
func (r *Ring[T]) AppendBack(el T) int {
	r.elements = append(r.elements, el)
	idx := len(r.elements) - 1
	if idx == 0 {
		r.focused = 0
	}
	return idx
}

// Insert inserts an element at idx, shifting subsequent elements back. idx
// is clamped to [0, len].
func (r *Ring[T]) Insert(idx int, el T) int {
	if idx < 0 {
		idx = 0
	}
	if idx > len(r.elements) {
		idx = len(r.elements)
	}
	r.elements = append(r.elements, el)
	copy(r.elements[idx+1:], r.elements[idx:])
	r.elements[idx] = el
	if len(r.elements) > 1 && idx <= r.focused {
		r.focused++
	}
	return idx
}

// Remove removes and returns the element at idx. Removing the focused
// element moves focus to max(0, idx-1); removing an element before the
// focused one shifts focus down by one so the same element stays focused;
// removing one after it leaves focus unchanged. Removing from an
// out-of-range idx is a no-op and returns the zero value and false.
func (r *Ring[T]) Remove(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(r.elements) {
		return zero, false
	}
	el := r.elements[idx]
	r.elements = append(r.elements[:idx], r.elements[idx+1:]...)

	switch {
	case len(r.elements) == 0:
		r.focused = 0
	case idx < r.focused:
		r.focused--
	case idx == r.focused:
		next := idx - 1
		if next < 0 {
			next = 0
		}
		r.focused = next
	}
	if r.focused >= len(r.elements) && len(r.elements) > 0 {
		r.focused = len(r.elements) - 1
	}
	return el, true
}

// Focus saturates idx into [0, len) and sets it as focused. A no-op on an
// empty ring.
func (r *Ring[T]) Focus(idx int) {
	if r.IsEmpty() {
		r.focused = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(r.elements) {
		idx = len(r.elements) - 1
	}
	r.focused = idx
}

// IndexOf returns the index of the first element matching pred, or -1.
func (r *Ring[T]) IndexOf(pred func(T) bool) int {
	for i, el := range r.elements {
		if pred(el) {
			return i
		}
	}
	return -1
}

// Swap exchanges the elements at i and j. Out-of-range indices are a no-op.
func (r *Ring[T]) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(r.elements) || j >= len(r.elements) {
		return
	}
	r.elements[i], r.elements[j] = r.elements[j], r.elements[i]
}
