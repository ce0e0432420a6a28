package ingest

import "errors"

var (
	// ErrSourceUnavailable marks a missing or unreadable input document.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrParse marks a document that exists but is not valid for its domain.
	ErrParse = errors.New("parse error")
)
