package crypto

import "errors"

var (
	// ErrIntegrityFailure means the authentication tag did not verify:
	// the ciphertext was tampered with, corrupted, or decrypted with
	// the wrong key. No plaintext is ever returned alongside it.
	ErrIntegrityFailure = errors.New("integrity check failed")

	// ErrUnsupportedVersion means the envelope names an algorithm or
	// version this build has no cipher for.
	ErrUnsupportedVersion = errors.New("unsupported envelope algorithm or version")

	// ErrKeyNotFound means no room key is available and no exchange
	// material exists to derive one.
	ErrKeyNotFound = errors.New("room key not found")

	// ErrInvalidKeySize means key material has the wrong length for the
	// selected cipher.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidEnvelope means the envelope is structurally malformed
	// (wrong nonce length, missing tag) before any cryptographic check.
	ErrInvalidEnvelope = errors.New("malformed envelope")
)
