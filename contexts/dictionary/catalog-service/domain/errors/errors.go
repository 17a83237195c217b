package errors

import "errors"

var (
	ErrInvalidRequestInput = errors.New("invalid translation request input")
	ErrInvalidStatus       = errors.New("invalid request status")
	ErrRequestNotFound     = errors.New("translation request not found")
	ErrTermNotFound        = errors.New("term not found")
	ErrAlreadyReviewed     = errors.New("translation request already reviewed")
	ErrInvalidReviewer     = errors.New("invalid reviewer id")
)
