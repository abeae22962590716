package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed non-empty headers are reported by utils.ParseBearerToken
// with its own sentinel error.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// ErrMalformedRequestBody is returned when a JSON request body cannot be
// decoded into the expected payload type.
var ErrMalformedRequestBody = errors.New("malformed request body")
