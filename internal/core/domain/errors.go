package domain

import "errors"

// Closed set of domain errors. Handlers and the central error handler map
// these to HTTP statuses; services never return ad hoc strings for
// conditions a caller needs to distinguish.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("please provide email and password")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")

	ErrCareerNotFound  = errors.New("career not found")
	ErrProjectNotFound = errors.New("project not found")
)
