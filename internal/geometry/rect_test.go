package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axwm/axwm/internal/geometry"
)

func TestAddPaddingRestoresLeftTopDirectionally(t *testing.T) {
	r := geometry.NewRect(0, 0, 1920, 1080)
	padded := r.AddPadding(10)
	assert.Equal(t, 10, padded.Left)
	assert.Equal(t, 10, padded.Top)
	assert.Equal(t, 1900, padded.Width())
	assert.Equal(t, 1060, padded.Height())

	// Applying AddMargin with the same value after AddPadding restores the
	// original Left/Top (spec.md §8 property 8); only Left/Top are asserted
	// here.
	restored := padded.AddMargin(10)
	assert.Equal(t, r.Left, restored.Left)
	assert.Equal(t, r.Top, restored.Top)
}

func TestContains(t *testing.T) {
	outer := geometry.NewRect(0, 0, 100, 100)
	inner := geometry.NewRect(10, 10, 50, 50)
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}

func TestApplyAdjustmentSilentlyIgnoredOnNonPositiveResult(t *testing.T) {
	r := geometry.NewRect(0, 0, 10, 10)
	adj := geometry.Adjustment{Right: -20} // would make width -10
	result := r.Apply(adj)
	assert.Equal(t, r, result, "resize failure falls back to un-adjusted rect")
}

func TestApplyAdjustmentGrowsEdges(t *testing.T) {
	r := geometry.NewRect(10, 10, 100, 100)
	adj := geometry.Adjustment{Left: 5, Top: 5, Right: 5, Bottom: 5}
	result := r.Apply(adj)
	assert.Equal(t, 5, result.Left)
	assert.Equal(t, 5, result.Top)
	assert.Equal(t, 110, result.Width())
	assert.Equal(t, 110, result.Height())
}

func TestScaleOffsetsProportional(t *testing.T) {
	oldSize := geometry.NewRect(0, 0, 1920, 1080)
	newSize := geometry.NewRect(0, 0, 3840, 2160)
	left, top, right, bottom := geometry.ScaleOffsets(oldSize, newSize, 0, 24, 0, 0)
	assert.Equal(t, 0, left)
	assert.Equal(t, 48, top)
	assert.Equal(t, 0, right)
	assert.Equal(t, 0, bottom)
}
