package upload

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/models"
)

// pdfBytes returns a minimal document carrying the %PDF magic header.
func pdfBytes(size int) []byte {
	data := []byte("%PDF-1.7\n")
	if size > len(data) {
		data = append(data, bytes.Repeat([]byte{' '}, size-len(data))...)
	}
	return data
}

// exeBytes carries the MZ magic header of a Windows executable.
func exeBytes() []byte {
	return append([]byte("MZ"), bytes.Repeat([]byte{0x00}, 128)...)
}

func pngBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
}

func TestValidator_AcceptsAllowedType(t *testing.T) {
	v := NewValidator(config.Upload{
		AllowedMimeTypes: []string{"application/pdf"},
		MaxFileSizeBytes: 1 << 20,
	})

	result, err := v.Validate(pdfBytes(256))
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, "application/pdf", result.DetectedType)
	assert.Equal(t, int64(256), result.SizeBytes)
}

func TestValidator_RejectsDisguisedExecutable(t *testing.T) {
	v := NewValidator(config.Upload{
		AllowedMimeTypes: []string{"application/pdf", "image/png"},
		MaxFileSizeBytes: 1 << 20,
	})

	// The claimed name would be report.pdf; only the content counts.
	result, err := v.Validate(exeBytes())
	assert.True(t, errors.Is(err, ErrInvalidType))
	assert.False(t, result.IsValid)
	assert.Equal(t, models.RejectInvalidType, result.Reason)
}

func TestValidator_RejectsOversized(t *testing.T) {
	v := NewValidator(config.Upload{
		AllowedMimeTypes: []string{"application/pdf"},
		MaxFileSizeBytes: 128,
	})

	result, err := v.Validate(pdfBytes(256))
	assert.True(t, errors.Is(err, ErrTooLarge))
	assert.Equal(t, models.RejectTooLarge, result.Reason)
	assert.Equal(t, int64(256), result.SizeBytes)
}

func TestValidator_TypeCheckedBeforeSize(t *testing.T) {
	v := NewValidator(config.Upload{
		AllowedMimeTypes: []string{"application/pdf"},
		MaxFileSizeBytes: 16,
	})

	// Disallowed and oversized: the type rejection wins.
	_, err := v.Validate(exeBytes())
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestValidator_DefaultsAdmitCommonTypes(t *testing.T) {
	v := NewValidator(config.Upload{})

	for _, data := range [][]byte{pdfBytes(64), pngBytes()} {
		result, err := v.Validate(data)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
	}

	_, err := v.Validate(exeBytes())
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestValidator_AllowedTypeIgnoresCharsetParams(t *testing.T) {
	v := NewValidator(config.Upload{
		AllowedMimeTypes: []string{"text/plain"},
		MaxFileSizeBytes: 1 << 20,
	})

	result, err := v.Validate([]byte("session notes, plain text"))
	require.NoError(t, err)
	assert.True(t, result.IsValid)
}

func TestNamer_StorageName(t *testing.T) {
	namer := NewNamer()

	first := namer.StorageName("application/pdf")
	second := namer.StorageName("application/pdf")

	assert.NotEqual(t, first, second)
	assert.Contains(t, first, ".pdf")

	// Unknown types get no guessed extension.
	bare := namer.StorageName("application/x-unheard-of")
	assert.NotContains(t, bare, ".")
}
