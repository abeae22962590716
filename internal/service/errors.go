package service

import "errors"

var (
	// ErrMessageUnavailable is returned when a message cannot be
	// handed to the reader: expired, missing, or failing its
	// integrity check. The reader is told no more than that.
	ErrMessageUnavailable = errors.New("message unavailable")

	// ErrEmptyPlaintext rejects a send with nothing to encrypt.
	ErrEmptyPlaintext = errors.New("empty plaintext")

	// ErrEmptySearchTerm rejects a search with a blank term.
	ErrEmptySearchTerm = errors.New("empty search term")
)
