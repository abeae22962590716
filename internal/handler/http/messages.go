package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vidabem/securechat/internal/utils"
	"github.com/vidabem/securechat/models"
)

// sendMessage encrypts and stores a message in the room. The response
// carries the stored record: ciphertext envelope and metadata, never the
// plaintext back.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUser(w, r)
	if !ok {
		return
	}
	roomID := chi.URLParam(r, "roomID")

	var req models.SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	message, err := h.services.Messages.Send(r.Context(), roomID, userID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) readMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	decrypted, err := h.services.Messages.Read(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, decrypted, http.StatusOK)
}

func (h *Handler) listRoomMessages(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(w, r, ErrMalformedRequestBody)
			return
		}
		limit = parsed
	}

	messages, err := h.services.Messages.ListRoom(r.Context(), roomID, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) searchMessages(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req models.SearchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	messages, err := h.services.Messages.Search(r.Context(), roomID, req.Term)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) messageExpiration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.services.Messages.ExpirationStatus(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
