package service

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTableNotFound      = errors.New("table not found")
	ErrGuestNotFound      = errors.New("guest not found")
	ErrAssignmentNotFound = errors.New("seating assignment not found")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
)
