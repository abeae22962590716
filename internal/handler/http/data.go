package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/utils"
	"github.com/vidabem/securechat/models"
)

// decodeBody unmarshals the request body into target. A syntactically
// invalid body is the caller's fault; the wrapped error maps to 400.
func decodeBody(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}
	return nil
}

// respondError maps err to an HTTP status, logs it with the request
// scoped logger and writes the JSON error body. Internal errors are
// masked; the client only learns the generic status text.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		utils.WriteJSON(w, models.APIError{Error: http.StatusText(status)}, status)
		return
	}

	log.Warn().Err(err).Msg("request rejected")
	utils.WriteJSON(w, models.APIError{Error: err.Error()}, status)
}

// authorizedUser pulls the authenticated user id installed by the auth
// middleware. Reaching a protected handler without it is a routing bug.
func authorizedUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
