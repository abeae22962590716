package http

import (
	"net/http"

	"github.com/vidabem/securechat/internal/utils"
)

// expirationOptions lists the TTL values, in seconds, a message may be
// created with. Zero means the message never expires.
func (h *Handler) expirationOptions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Expiration.Options(), http.StatusOK)
}
