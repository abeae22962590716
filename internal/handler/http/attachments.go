package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vidabem/securechat/internal/upload"
	"github.com/vidabem/securechat/internal/utils"
)

// defaultUploadCap bounds attachment request bodies when no explicit cap
// is configured. Matches the validator's default size limit.
const defaultUploadCap = 10 << 20

// uploadAttachment reads the raw request body as the file content. The
// body is capped one byte above the configured maximum so that an
// oversized upload still reaches the validator and is rejected with the
// proper reason instead of a bare connection error.
func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}
	roomID := chi.URLParam(r, "roomID")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.uploadCap()+1))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, r, upload.ErrTooLarge)
			return
		}
		respondError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequestBody, err))
		return
	}

	attachment, err := h.services.Attachments.Upload(r.Context(), roomID, userID, data)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, attachment, http.StatusCreated)
}

// downloadAttachment streams the decrypted file back with the
// content-detected type. The filename is the opaque storage name; the
// original client-supplied name was never kept.
func (h *Handler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	attachment, data, err := h.services.Attachments.Download(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", attachment.DetectedType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.StorageName))
	w.Write(data)
}

func (h *Handler) uploadCap() int64 {
	if h.cfg.Upload.MaxFileSizeBytes > 0 {
		return h.cfg.Upload.MaxFileSizeBytes
	}
	return defaultUploadCap
}
