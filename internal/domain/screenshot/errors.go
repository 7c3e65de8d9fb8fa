package screenshot

import "errors"

var (
	ErrInvalidWorkSession = errors.New("invalid work session ID")
	ErrFileRequired       = errors.New("screenshot image is required")
)
