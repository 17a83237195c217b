package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("no authenticated session")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidActorID  = errors.New("invalid actor id")
)
