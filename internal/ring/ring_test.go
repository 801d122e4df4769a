package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axwm/axwm/internal/ring"
)

func TestEmptyRingHasNoFocus(t *testing.T) {
	r := ring.New[int]()
	assert.True(t, r.IsEmpty())
	_, ok := r.Focused()
	assert.False(t, ok)
	_, ok = r.FocusedIndex()
	assert.False(t, ok)
}

func TestAppendBackFocusesFirstElement(t *testing.T) {
	r := ring.New[string]()
	r.AppendBack("a")
	v, ok := r.Focused()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	r.AppendBack("b")
	v, ok = r.Focused()
	require.True(t, ok)
	assert.Equal(t, "a", v, "appending does not move focus off the first element")
}

func TestRemoveClampsFocusToMaxZeroIdxMinusOne(t *testing.T) {
	r := ring.New[int]()
	for _, v := range []int{10, 20, 30, 40} {
		r.AppendBack(v)
	}
	r.Focus(2) // focused = 30

	removed, ok := r.Remove(2)
	require.True(t, ok)
	assert.Equal(t, 30, removed)

	idx, ok := r.FocusedIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx, "focus clamps to max(0, idx-1)")
}

func TestRemoveLastElementResetsFocus(t *testing.T) {
	r := ring.New[int]()
	r.AppendBack(1)
	r.Remove(0)
	assert.True(t, r.IsEmpty())
	_, ok := r.Focused()
	assert.False(t, ok)
}

func TestRemoveBeforeFocusShiftsFocusDown(t *testing.T) {
	r := ring.New[int]()
	for _, v := range []int{1, 2, 3} {
		r.AppendBack(v)
	}
	r.Focus(2) // 3
	r.Remove(0)
	idx, ok := r.FocusedIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	v, _ := r.Focused()
	assert.Equal(t, 3, v)
}

func TestFocusSaturates(t *testing.T) {
	r := ring.New[int]()
	for _, v := range []int{1, 2, 3} {
		r.AppendBack(v)
	}
	r.Focus(-5)
	idx, _ := r.FocusedIndex()
	assert.Equal(t, 0, idx)

	r.Focus(99)
	idx, _ = r.FocusedIndex()
	assert.Equal(t, 2, idx)
}

func TestInsertShiftsFocusWhenAtOrAfterInsertionPoint(t *testing.T) {
	r := ring.New[int]()
	for _, v := range []int{1, 2, 3} {
		r.AppendBack(v)
	}
	r.Focus(1) // element "2"
	r.Insert(0, 99)
	idx, _ := r.FocusedIndex()
	assert.Equal(t, 2, idx)
	v, _ := r.Focused()
	assert.Equal(t, 2, v)
}

func TestIndexOf(t *testing.T) {
	r := ring.New[int]()
	for _, v := range []int{1, 2, 3} {
		r.AppendBack(v)
	}
	assert.Equal(t, 1, r.IndexOf(func(v int) bool { return v == 2 }))
	assert.Equal(t, -1, r.IndexOf(func(v int) bool { return v == 42 }))
}

func TestSwap(t *testing.T) {
	r := ring.New[int]()
	for _, v := range []int{1, 2, 3} {
		r.AppendBack(v)
	}
	r.Swap(0, 2)
	assert.Equal(t, []int{3, 2, 1}, r.Elements())
}
