package models

import "time"

// ScanStatus is the verdict returned by the external malware scanner.
type ScanStatus string

const (
	ScanClean    ScanStatus = "clean"
	ScanInfected ScanStatus = "infected"
	ScanUnknown  ScanStatus = "unknown"
)

// ScanResult is the outcome of a single malware scan. Transient; a new
// result is produced per upload.
type ScanResult struct {
	Status    ScanStatus `json:"status"`
	ScannedAt time.Time  `json:"scanned_at"`
}

// Rejection reasons recorded in FileValidationResult.Reason. The reason
// distinguishes a recoverable re-upload (wrong type, too large) for the
// user-facing error message.
const (
	RejectInvalidType = "invalid_type"
	RejectTooLarge    = "too_large"
)

// FileValidationResult describes the outcome of validating an untrusted
// upload. DetectedType is sniffed from content, never taken from the
// client-supplied filename or Content-Type header.
type FileValidationResult struct {
	IsValid      bool   `json:"is_valid"`
	Reason       string `json:"reason,omitempty"`
	DetectedType string `json:"detected_type"`
	SizeBytes    int64  `json:"size_bytes"`
}
