package renderer

import "errors"

var (
	ErrInvalidImageWidth  = errors.New("renderer: image width must be a finite value of at least 1")
	ErrInvalidAspectRatio = errors.New("renderer: aspect ratio must be positive")
	ErrInvalidSamples     = errors.New("renderer: samples per pixel must be at least 1")
	ErrInvalidDepth       = errors.New("renderer: max depth must not be negative")
	ErrNilSink            = errors.New("renderer: no image sink")
)
