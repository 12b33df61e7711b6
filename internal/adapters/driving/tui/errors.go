package tui

import "errors"

// ErrMissingTracker is returned when the tracker service is not provided.
var ErrMissingTracker = errors.New("tui: tracker service is required")

// ErrMissingViewSelector is returned when the view selector is not provided.
var ErrMissingViewSelector = errors.New("tui: view selector is required")
