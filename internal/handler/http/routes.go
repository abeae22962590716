package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/rooms/{roomID}/messages", h.sendMessage)
		r.Get("/api/rooms/{roomID}/messages", h.listRoomMessages)
		r.Post("/api/rooms/{roomID}/messages/search", h.searchMessages)
		r.Get("/api/messages/{id}", h.readMessage)
		r.Get("/api/messages/{id}/expiration", h.messageExpiration)
		r.Get("/api/expiration/options", h.expirationOptions)

		r.Post("/api/rooms/{roomID}/attachments", h.uploadAttachment)
		r.Get("/api/attachments/{id}", h.downloadAttachment)

		r.Get("/api/keys/public", h.getPublicKey)
		r.Post("/api/rooms/{roomID}/keys/wrap", h.wrapRoomKey)
		r.Post("/api/rooms/{roomID}/keys/accept", h.acceptRoomKey)
		r.Post("/api/rooms/{roomID}/keys/rotate", h.rotateRoomKey)
	})

	return router
}
