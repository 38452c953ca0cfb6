package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyCorpus = errors.New("empty corpus")
)
