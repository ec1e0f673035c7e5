package service

import "errors"

// Domain errors surfaced to clients. The messages are the API contract, so
// handlers return them verbatim.
var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrNotAnOrganizer     = errors.New("User is not an organizer")
	ErrEventNotFound      = errors.New("Event not found")
	ErrEventBlocked       = errors.New("Event is blocked")
	ErrNotEventOwner      = errors.New("Not allowed to edit this event")
	ErrInvalidCategory    = errors.New("Invalid category")
)
