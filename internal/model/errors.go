package model

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrAlreadyEnrolled = errors.New("student already enrolled")
)
