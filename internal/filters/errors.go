package filters

import "errors"

var (
	// ErrDuplicateFilter indicates an attempt to register a filter ID twice.
	ErrDuplicateFilter = errors.New("filters: duplicate filter")
	// ErrInvalidDescriptor occurs when a descriptor fails validation.
	ErrInvalidDescriptor = errors.New("filters: invalid descriptor")
	// ErrFilterNotFound is returned when an unknown filter ID is requested.
	ErrFilterNotFound = errors.New("filters: filter not found")
	// ErrInvalidSettings wraps settings that fail the descriptor schema.
	ErrInvalidSettings = errors.New("filters: invalid settings")
)
