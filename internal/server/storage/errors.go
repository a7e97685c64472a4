package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrRecordNotFound indicates that a financial record was not found
	// for the requesting owner. Records of other users surface the same
	// error so their existence is never confirmed.
	ErrRecordNotFound = errors.New("record not found")
)
