package services

import "errors"

// Errors shared across services and the HTTP error mapping.
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrTournamentNotFound = errors.New("tournament not found")
)
