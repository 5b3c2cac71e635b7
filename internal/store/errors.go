package store

import "errors"

var (
	ErrRunNotFound      = errors.New("run not found")
	ErrStepAlreadySaved = errors.New("step already saved")
	ErrInvalidStep      = errors.New("invalid step record")
)
