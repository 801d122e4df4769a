package accessibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axwm/axwm/internal/accessibility"
)

func TestErrorReportsKind(t *testing.T) {
	err := accessibility.NewError("SetPosition", accessibility.InvalidUIElement)
	assert.Equal(t, "accessibility: SetPosition: InvalidUIElement", err.Error())
	assert.True(t, accessibility.IsInvalidUIElement(err))
}

func TestUnknownErrorCarriesCode(t *testing.T) {
	err := accessibility.NewUnknownError("Focus", -25212)
	assert.Contains(t, err.Error(), "-25212")
	assert.False(t, accessibility.IsInvalidUIElement(err))
}

func TestIsInvalidUIElementFalseForNonAccessibilityError(t *testing.T) {
	assert.False(t, accessibility.IsInvalidUIElement(assertError{}))
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
