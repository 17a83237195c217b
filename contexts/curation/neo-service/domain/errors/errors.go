package errors

import "errors"

var (
	ErrInvalidNeoInput    = errors.New("invalid neo input")
	ErrInvalidRating      = errors.New("invalid rating input")
	ErrNeoNotFound        = errors.New("neo not found")
	ErrTermNotFound       = errors.New("term not found")
	ErrBatchLimitExceeded = errors.New("too many suggestions in one submission")
	ErrContentRejected    = errors.New("suggestion rejected by content review")
	ErrConflict           = errors.New("neo conflict")
)
