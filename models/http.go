package models

// SendMessageRequest is the inbound payload for posting a message to a
// room. Plaintext is encrypted before anything is persisted; IndexTerms
// are the optional terms to make the message findable by equality
// search (each is hashed, never stored in clear).
type SendMessageRequest struct {
	Plaintext  string   `json:"plaintext"`
	IndexTerms []string `json:"index_terms,omitempty"`
	TTLSeconds int64    `json:"ttl_seconds"`
}

// SearchRequest asks for messages in a room whose indexed terms match
// the given term after normalization.
type SearchRequest struct {
	Term string `json:"term"`
}

// WrapKeyRequest asks the core to encrypt the room key to another
// participant's public key (PKIX DER) for out-of-band delivery.
type WrapKeyRequest struct {
	RecipientID int64  `json:"recipient_id"`
	PublicKey   []byte `json:"public_key"`
}

// AcceptKeyRequest delivers a wrapped room key received out-of-band so
// the local identity can unwrap and install it.
type AcceptKeyRequest struct {
	Wrapped []byte `json:"wrapped"`
}

// APIError is the JSON error body returned by the HTTP surface. Detail
// never contains plaintext or key material.
type APIError struct {
	Error string `json:"error"`
}
