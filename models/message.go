package models

import "time"

// Message is a stored chat message: ciphertext envelope plus the
// non-secret metadata the persistence layer is allowed to see. The
// plaintext exists only transiently inside the encryption core.
type Message struct {
	ID           string            `json:"id"`
	RoomID       string            `json:"room_id"`
	SenderID     int64             `json:"sender_id"`
	Envelope     EncryptedEnvelope `json:"envelope"`
	SearchHashes []SearchHash      `json:"search_hashes,omitempty"`
	Expiration   ExpirationPolicy  `json:"expiration"`
	CreatedAt    time.Time         `json:"created_at"`
}

// DecryptedMessage is the read-side result handed to the caller after a
// successful integrity check and decryption. It is never persisted.
type DecryptedMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  int64     `json:"sender_id"`
	Plaintext []byte    `json:"plaintext"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment is a stored encrypted file. StorageName is the opaque,
// collision-resistant key the blob is stored under; the user-supplied
// filename never reaches storage.
type Attachment struct {
	ID           string            `json:"id"`
	RoomID       string            `json:"room_id"`
	OwnerID      int64             `json:"owner_id"`
	StorageName  string            `json:"storage_name"`
	DetectedType string            `json:"detected_type"`
	SizeBytes    int64             `json:"size_bytes"`
	Envelope     EncryptedEnvelope `json:"envelope"`
	CreatedAt    time.Time         `json:"created_at"`
}
