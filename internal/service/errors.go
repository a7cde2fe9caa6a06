package service

import "errors"

// Sentinel errors translated by the handlers into problem responses.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidPeriod      = errors.New("invalid period: use daily, weekly, or monthly")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)
