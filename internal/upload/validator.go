// Package upload validates incoming files before they are encrypted
// and stored: content-based type detection, size caps, malware
// scanning and storage-safe renaming.
package upload

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/models"
)

// Defaults applied when the corresponding configuration value is
// absent.
var defaultAllowedTypes = []string{
	"application/pdf",
	"image/png",
	"image/jpeg",
	"text/plain; charset=utf-8",
}

const defaultMaxFileSize = 10 << 20 // 10 MiB

// Validator decides whether a file may enter the system. The type
// decision is made from the file's leading bytes, never from the
// client-supplied name or Content-Type header.
type Validator struct {
	allowed map[string]struct{}
	maxSize int64
}

// NewValidator builds a [Validator] from upload configuration, falling
// back to the built-in whitelist and size cap for absent values.
func NewValidator(cfg config.Upload) *Validator {
	types := cfg.AllowedMimeTypes
	if len(types) == 0 {
		types = defaultAllowedTypes
	}

	maxSize := cfg.MaxFileSizeBytes
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}

	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}

	return &Validator{allowed: allowed, maxSize: maxSize}
}

// Validate inspects the file content and returns the validation
// verdict together with the matching rejection error, if any. The type
// check runs before the size check so a disallowed oversized file is
// reported as a type rejection.
func (v *Validator) Validate(data []byte) (models.FileValidationResult, error) {
	detected := mimetype.Detect(data)

	result := models.FileValidationResult{
		DetectedType: detected.String(),
		SizeBytes:    int64(len(data)),
	}

	if !v.allowedType(detected) {
		result.Reason = models.RejectInvalidType
		return result, ErrInvalidType
	}

	if result.SizeBytes > v.maxSize {
		result.Reason = models.RejectTooLarge
		return result, ErrTooLarge
	}

	result.IsValid = true
	return result, nil
}

// MaxSize returns the configured size cap in bytes.
func (v *Validator) MaxSize() int64 {
	return v.maxSize
}

// allowedType matches the detected type and its parents against the
// whitelist, so "text/plain" in config admits "text/plain;
// charset=utf-8" detections.
func (v *Validator) allowedType(detected *mimetype.MIME) bool {
	for m := detected; m != nil; m = m.Parent() {
		if _, ok := v.allowed[m.String()]; ok {
			return true
		}
		if _, ok := v.allowed[trimParams(m.String())]; ok {
			return true
		}
	}
	return false
}

func trimParams(mime string) string {
	for i := 0; i < len(mime); i++ {
		if mime[i] == ';' {
			return mime[:i]
		}
	}
	return mime
}
