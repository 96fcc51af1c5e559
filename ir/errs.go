package ir

import "errors"

var (
	// ErrKey reports a container access with a key or index that does
	// not address an existing entry.
	ErrKey = errors.New("key error")

	// ErrParse reports malformed JSON text handed to Decode.
	ErrParse = errors.New("parse error")
)
