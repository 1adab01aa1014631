package entity

import "errors"

// Validation failures are surfaced inline before any submission is attempted.
var (
	ErrTooManyFiles     = errors.New("at most 3 images can be attached to a post")
	ErrConflictingMedia = errors.New("a post can carry images or a video, not both")
	ErrMissingFields    = errors.New("required fields are missing")
)
