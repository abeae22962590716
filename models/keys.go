package models

import "time"

// RoomKey is the symmetric key shared by all participants of one
// conversation. Material is raw key bytes owned exclusively by the
// process holding it; it must never appear in logs or error strings,
// and it is persisted only after being wrapped by the key manager.
type RoomKey struct {
	RoomID    string
	Algorithm string
	Version   int
	Material  []byte
}

// WrappedRoomKey is a room key encrypted to one participant's public
// key, ready for out-of-band distribution by the surrounding
// application. The core never sees the exchange channel itself.
type WrappedRoomKey struct {
	RoomID      string    `json:"room_id"`
	RecipientID int64     `json:"recipient_id"`
	Wrapped     []byte    `json:"wrapped"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicKeyExport is the transportable form of a participant's public
// key (PKIX DER). Public keys are not secret; only the pairing private
// key is confined to the local identity.
type PublicKeyExport struct {
	OwnerID int64  `json:"owner_id"`
	DER     []byte `json:"der"`
}
