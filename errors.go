package fractal

import "errors"

var (
	ErrInvalidWindow   = errors.New("invalid window")
	ErrInvalidParams   = errors.New("invalid parameters")
	ErrGridSize        = errors.New("result grid does not match window")
	ErrPaletteTooSmall = errors.New("palette too small")
	ErrRowLength       = errors.New("kernel returned short row")
)
