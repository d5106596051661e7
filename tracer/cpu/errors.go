package cpu

import "errors"

var (
	ErrNotInitialized   = errors.New("cpu tracer: tracer not attached to a scene")
	ErrAlreadyAttached  = errors.New("cpu tracer: tracer already attached to a scene")
	ErrClosed           = errors.New("cpu tracer: tracer is closed")
	ErrInvalidFrame     = errors.New("cpu tracer: frame dimensions must be positive")
	ErrBufferSize       = errors.New("cpu tracer: accumulation buffer does not match frame dimensions")
	ErrBlockOutOfBounds = errors.New("cpu tracer: block request exceeds frame bounds")
	ErrNoSubsamples     = errors.New("cpu tracer: block request has no subsamples")
)
