// Package services defines the business logic for dataset search, reload,
// and video feedback. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrVideoNotFound indicates that the requested video ID does not exist
	// in the current dataset snapshot.
	ErrVideoNotFound = errors.New("video not found")

	// ErrNoDataset is returned by operations that need a loaded dataset
	// (e.g. feedback validation) before the first successful load.
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrInvalidFeedback is returned when a feedback value is outside the
	// allowed set (currently -1 or 1).
	ErrInvalidFeedback = errors.New("feedback value must be -1 or 1")

	// ErrDuplicateFeedback is returned when a user attempts to rate a video
	// they have already rated.
	ErrDuplicateFeedback = errors.New("feedback already exists")

	// ErrUnknownMode is returned when the requested search mode is not one
	// of fuzzy, keyword, or category.
	ErrUnknownMode = errors.New("unknown search mode")
)
