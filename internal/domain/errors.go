package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrDateOptionNotFound = errors.New("date option not found")
)

var (
	ErrUnauthorized     = errors.New("authentication required")
	ErrNoConfirmedDates = errors.New("no dates confirmed yet")
)

var (
	ErrValidation = errors.New("validation error")
)
