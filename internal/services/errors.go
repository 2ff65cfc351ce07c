package services

import "errors"

var (
	ErrStorageNotConfigured = errors.New("storage not configured")
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already in use")
	ErrBadCreatorID         = errors.New("invalid creator id")
)
