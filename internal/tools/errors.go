package tools

import "errors"

var (
	// ErrToolAlreadyRegistered is returned when registering a duplicate name.
	ErrToolAlreadyRegistered = errors.New("tool already registered")

	// ErrToolNotFound is returned when executing an unknown tool.
	ErrToolNotFound = errors.New("tool not found")
)
