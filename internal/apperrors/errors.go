package apperrors

import "errors"

var (
	ErrStorage = errors.New("storage error")
	ErrIO      = errors.New("i/o error")
)
