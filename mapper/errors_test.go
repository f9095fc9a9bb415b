package mapper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(fmt.Errorf("wrap: %w", ErrUnresolvedReference)))
	assert.False(t, IsRecoverable(fmt.Errorf("wrap: %w", ErrUnsupportedClassKind)))
	assert.False(t, IsRecoverable(fmt.Errorf("wrap: %w", ErrUnsupportedPrimitiveType)))
	assert.False(t, IsRecoverable(nil))
}
