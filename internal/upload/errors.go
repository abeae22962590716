package upload

import "errors"

// Upload rejection errors. Every path through validation and scanning
// that does not end in an explicit admit ends in one of these.
var (
	// ErrInvalidType indicates the content-detected file type is not
	// on the configured whitelist. The claimed filename extension and
	// Content-Type header play no part in the decision.
	ErrInvalidType = errors.New("file type not allowed")
	// ErrTooLarge indicates the file exceeds the configured size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrInfected indicates the malware scanner returned a positive
	// verdict. Infected files are always rejected regardless of policy.
	ErrInfected = errors.New("file failed malware scan")
	// ErrScanFailed indicates the scanner could not produce a verdict
	// and the active policy is fail-closed.
	ErrScanFailed = errors.New("malware scan unavailable")
	// ErrInvalidPolicy indicates an unrecognized unknown-scan policy
	// name in configuration.
	ErrInvalidPolicy = errors.New("invalid scan policy")
)
