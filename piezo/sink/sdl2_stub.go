//go:build !sdl2

package sink

import "fmt"

// SDL is unavailable without the sdl2 build tag.
type SDL struct{}

func NewSDL() (*SDL, error) {
	return nil, fmt.Errorf("sdl: %w (rebuild with -tags sdl2)", ErrUnsupported)
}

func (*SDL) Start(Provider) error { return ErrUnsupported }
func (*SDL) Close() error         { return nil }
