package project

import "errors"

var (
	// ErrInvalidInput indicates a submission failed validation. It carries no
	// detail about which field failed.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrUnknownStatus indicates an unrecognised project status.
	ErrUnknownStatus = errors.New("unknown project status")
)
