package matching

import "errors"

var (
	ErrNotFound     = errors.New("match result not found")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeNotFound   = "NOT_FOUND"
	ErrorCodeStorage    = "STORAGE_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
