package service

import "errors"

var (
	// ErrMissingKey is returned when a save payload carries no primary key
	// for an entity type whose keys are caller-assigned
	ErrMissingKey = errors.New("primary key is required")

	// ErrEmptyPassword is returned when a user is saved without a password
	ErrEmptyPassword = errors.New("password is required")

	// ErrEmptyFile is returned when an image upload carries no bytes
	ErrEmptyFile = errors.New("file content is required")
)
