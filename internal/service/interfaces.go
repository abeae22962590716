package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/models"
)

// MessageService is the write and read surface for encrypted room
// messages. Plaintext enters on Send and leaves on Read; everything in
// between is ciphertext.
type MessageService interface {
	// Send encrypts the plaintext under the room's key and persists
	// the envelope with its search hashes and expiration policy.
	Send(ctx context.Context, roomID string, senderID int64, req models.SendMessageRequest) (models.Message, error)

	// Read returns the decrypted message, or ErrMessageUnavailable
	// when it is expired, tampered with, or missing.
	Read(ctx context.Context, id string) (models.DecryptedMessage, error)

	// ListRoom returns the newest readable messages of a room, most
	// recent first. Expired or undecryptable messages are omitted.
	ListRoom(ctx context.Context, roomID string, limit uint64) ([]models.DecryptedMessage, error)

	// Search returns the readable messages of a room whose indexed
	// terms match the given term after normalization.
	Search(ctx context.Context, roomID, term string) ([]models.DecryptedMessage, error)

	// ExpirationStatus evaluates the stored message's expiry against
	// the current clock without touching any key material.
	ExpirationStatus(ctx context.Context, id string) (models.ExpirationStatus, error)
}

// AttachmentService validates, scans, encrypts and stores files.
type AttachmentService interface {
	// Upload runs the full admission pipeline: content-based type
	// check, size cap, malware scan under the configured policy,
	// storage-safe rename, then encryption under the room key.
	Upload(ctx context.Context, roomID string, ownerID int64, data []byte) (models.Attachment, error)

	// Download returns the attachment record and its decrypted bytes.
	Download(ctx context.Context, id string) (models.Attachment, []byte, error)
}

// ExchangeService implements asymmetric room-key delivery between
// participants: export a public key, wrap the room key to a peer, and
// install a key received out-of-band.
type ExchangeService interface {
	// PublicKey returns the user's public key export, generating the
	// identity pair on first use.
	PublicKey(ctx context.Context, ownerID int64) (models.PublicKeyExport, error)

	// WrapRoomKey encrypts the room's key to the recipient's public
	// key (PKIX DER). The blob is bound to the room and unusable for
	// any other.
	WrapRoomKey(ctx context.Context, roomID string, recipientDER []byte) ([]byte, error)

	// AcceptRoomKey unwraps a blob received out-of-band with the
	// owner's private key and installs it as the room key. Returns
	// store.ErrAlreadyExists when the room already has a key.
	AcceptRoomKey(ctx context.Context, roomID string, ownerID int64, wrapped []byte) error

	// RotateRoomKey replaces the room's key with a fresh one. Old
	// ciphertext becomes unreadable.
	RotateRoomKey(ctx context.Context, roomID string) error
}

// KeyProvider is the slice of the key manager the services depend on.
type KeyProvider interface {
	GetOrCreateRoomKey(ctx context.Context, roomID string) (models.RoomKey, error)
	RoomKey(ctx context.Context, roomID string) (models.RoomKey, error)
	SetRoomKey(ctx context.Context, key models.RoomKey) error
	RotateRoomKey(ctx context.Context, roomID string) (models.RoomKey, error)
	UserKeyPair(ctx context.Context, ownerID int64) (*crypto.KeyPair, error)
}
