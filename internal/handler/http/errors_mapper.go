package http

import (
	"errors"
	"net/http"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/expiration"
	"github.com/vidabem/securechat/internal/service"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/internal/upload"
)

// Unavailable and not-found conditions share one status on purpose: the
// API does not reveal whether a message is missing, expired, or failed
// its integrity check.
var errorStatusMap = map[error]int{
	ErrMalformedRequestBody: http.StatusBadRequest,

	service.ErrMessageUnavailable: http.StatusNotFound,
	service.ErrEmptyPlaintext:     http.StatusBadRequest,
	service.ErrEmptySearchTerm:    http.StatusBadRequest,

	expiration.ErrInvalidPolicy: http.StatusBadRequest,

	crypto.ErrKeyNotFound:        http.StatusNotFound,
	crypto.ErrIntegrityFailure:   http.StatusNotFound,
	crypto.ErrUnsupportedVersion: http.StatusBadRequest,
	crypto.ErrInvalidEnvelope:    http.StatusBadRequest,

	upload.ErrInvalidType: http.StatusUnprocessableEntity,
	upload.ErrInfected:    http.StatusUnprocessableEntity,
	upload.ErrTooLarge:    http.StatusRequestEntityTooLarge,
	upload.ErrScanFailed:  http.StatusServiceUnavailable,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrKeyNotFound:   http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
