package service

import (
	"errors"
)

// Sentinel errors returned by services. Handlers map them to HTTP statuses:
// ErrNotFound → 404, ErrInvalidPassword → 401, validation.ValidationError →
// 400; anything else is a storage failure surfaced as 500 with a generic
// message.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidPassword = errors.New("incorrect password")
	ErrInvalidID       = errors.New("invalid id")
)
