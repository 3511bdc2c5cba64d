package courier

import "errors"

var (
	ErrCourierNotFound = errors.New("courier not found")
	ErrInvalidStatus   = errors.New("invalid courier status")
)
