package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// The widget itself never returns these; the CLI and HTTP surfaces use them
// to report what the widget treated as a no-op.

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrAmbiguousID   = errors.New("task id prefix matches more than one task")
	ErrEmptyText     = errors.New("task text must not be empty")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrMalformedData = errors.New("malformed task data")
	ErrStoreClosed   = errors.New("store is closed")
	ErrUnknownFormat = errors.New("unknown format")
)
