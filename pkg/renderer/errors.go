package renderer

import "errors"

var (
	ErrInvalidCamera   = errors.New("renderer: invalid camera configuration")
	ErrInvalidConfig   = errors.New("renderer: invalid sampling configuration")
	ErrNonFiniteSample = errors.New("renderer: sample produced a non-finite color")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
)
