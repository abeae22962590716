package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level
	// settings (for example, a missing token sign key or search hash
	// key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or a key store without a passphrase).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUploadConfigs indicates invalid upload limits (for
	// example, an unrecognized unknown-scan policy).
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
)
