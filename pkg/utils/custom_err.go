package utils

import "errors"

var (
	ErrTravelerNotFound   = errors.New("traveler not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrMessagingProvider  = errors.New("messaging provider error")
)
