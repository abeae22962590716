package expiration

import "errors"

// ErrInvalidPolicy indicates a TTL outside the enumerated options.
var ErrInvalidPolicy = errors.New("ttl is not an allowed expiration option")
