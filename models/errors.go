package models

import "errors"

var (
	ErrInvalidNumber     = errors.New("invalid number")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidOffset     = errors.New("invalid UTC offset")
	ErrInvalidDate       = errors.New("invalid date")
	ErrDateOutOfRange    = errors.New("date out of range")
	ErrCityNotFound      = errors.New("city not found")
	ErrFetchFailure      = errors.New("forecast fetch failed")
	ErrMalformedResponse = errors.New("malformed forecast response")
)
