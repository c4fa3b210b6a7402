package admin

import "errors"

var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrNoData                  = errors.New("no inquiries to export")
)
