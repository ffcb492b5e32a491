package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnValidInput_ShouldPassValidation(t *testing.T) {
	assert.NoError(t, Validate("Coffee", 4.5))
	assert.NoError(t, Validate("  padded  ", 0.01))
}

func Test_OnNonPositiveAmount_ShouldFailValidation(t *testing.T) {
	assert.ErrorIs(t, Validate("Coffee", 0), ErrNonPositiveAmount)
	assert.ErrorIs(t, Validate("Coffee", -1.5), ErrNonPositiveAmount)
}

func Test_OnBlankDescription_ShouldFailValidation(t *testing.T) {
	assert.ErrorIs(t, Validate("", 5), ErrEmptyDescription)
	assert.ErrorIs(t, Validate("   \t ", 5), ErrEmptyDescription)
}
