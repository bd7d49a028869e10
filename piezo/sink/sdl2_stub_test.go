//go:build !sdl2

package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSDLUnsupported(t *testing.T) {
	_, err := NewSDL()
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = New(OutputSDL)
	assert.ErrorIs(t, err, ErrUnsupported)
}
