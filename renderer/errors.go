package renderer

import "errors"

var (
	ErrNoTracers       = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined = errors.New("renderer: no scene defined")
	ErrInvalidFrame    = errors.New("renderer: frame dimensions and subsamples must be positive")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
)
