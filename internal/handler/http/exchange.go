package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vidabem/securechat/internal/utils"
	"github.com/vidabem/securechat/models"
)

// getPublicKey exports the caller's public key (PKIX DER) so other
// participants can wrap room keys to it.
func (h *Handler) getPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}

	export, err := h.services.Exchange.PublicKey(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, export, http.StatusOK)
}

// wrapRoomKey seals the room key to the recipient's public key for
// out-of-band delivery. The response never carries raw key material.
func (h *Handler) wrapRoomKey(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req models.WrapKeyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	wrapped, err := h.services.Exchange.WrapRoomKey(r.Context(), roomID, req.PublicKey)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WrappedRoomKey{
		RoomID:      roomID,
		RecipientID: req.RecipientID,
		Wrapped:     wrapped,
		CreatedAt:   time.Now(),
	}, http.StatusOK)
}

// acceptRoomKey unwraps a delivered room key with the caller's private
// key and installs it. If the room already holds a key the install is
// skipped and the conflict is reported.
func (h *Handler) acceptRoomKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}
	roomID := chi.URLParam(r, "roomID")

	var req models.AcceptKeyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Exchange.AcceptRoomKey(r.Context(), roomID, userID, req.Wrapped); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rotateRoomKey(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	if err := h.services.Exchange.RotateRoomKey(r.Context(), roomID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
