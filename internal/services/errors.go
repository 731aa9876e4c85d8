package services

import "errors"

// Fatal precondition errors. Everything else the generation pipeline needs is
// optional and degrades to a document with gaps.
var (
	ErrMissingProcessID = errors.New("proceso id is required")
	ErrMissingDate      = errors.New("hearing date is required")
)
