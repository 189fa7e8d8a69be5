package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrNoActiveRun    = errors.New("no active timer")
	ErrCorruptHistory = errors.New("corrupt session history")
)
