// Package internalerr holds the sentinel errors shared across hebnorm packages.
// Callers match them with errors.Is; producers wrap them with context.
package internalerr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrClosed        = errors.New("store closed")
)
