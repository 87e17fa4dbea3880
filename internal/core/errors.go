package core

import "errors"

var (
	// ErrEmptyEmail rejects requests with no email text at all. Whitespace
	// and garbage still classify; only the empty string is invalid input.
	ErrEmptyEmail = errors.New("email text is required")

	// ErrClassifier is the generic failure surfaced when the scoring
	// boundary misbehaves. Diagnostic detail goes to the log, not to the
	// caller.
	ErrClassifier = errors.New("classification failed")
)
