package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/vidabem/securechat/models"
)

// MessageRepository persists encrypted message envelopes. The database
// sees only ciphertext, search hashes and non-secret metadata.
type MessageRepository interface {
	// Save stores a message together with its search hashes in one
	// transaction.
	Save(ctx context.Context, message models.Message) error

	// Get returns a single message by id, or ErrNotFound.
	Get(ctx context.Context, id string) (models.Message, error)

	// ListRoom returns the newest messages of a room, most recent
	// first, capped at limit.
	ListRoom(ctx context.Context, roomID string, limit uint64) ([]models.Message, error)

	// Search returns the messages of a room whose search hashes match
	// any of the given digests.
	Search(ctx context.Context, roomID string, hashes ...models.SearchHash) ([]models.Message, error)

	// DeleteExpired removes every message whose expires_at has passed
	// and returns the number of rows purged. Called by the purge
	// worker; expiration status math lives in the expiration package.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AttachmentRepository persists encrypted file attachments.
type AttachmentRepository interface {
	Save(ctx context.Context, attachment models.Attachment) error
	Get(ctx context.Context, id string) (models.Attachment, error)
}

// KeyStore persists wrapped key material. Every blob stored here has
// already been encrypted by the key manager with the at-rest KEK; the
// store never sees raw keys.
//
// SaveRoomKey must be first-writer-wins: when a key for the room is
// already present the call returns ErrAlreadyExists and the caller
// re-reads, so two concurrent first-use paths converge on one key.
type KeyStore interface {
	GetRoomKey(ctx context.Context, roomID string) ([]byte, error)
	SaveRoomKey(ctx context.Context, roomID string, wrapped []byte) error
	DeleteRoomKey(ctx context.Context, roomID string) error

	GetKeyPair(ctx context.Context, ownerID int64) ([]byte, error)
	SaveKeyPair(ctx context.Context, ownerID int64, wrapped []byte) error
}

// Storages aggregates every persistence backend the services need. DB
// is exposed so the entrypoint can run migrations against the same
// connection.
type Storages struct {
	DB          *DB
	Messages    MessageRepository
	Attachments AttachmentRepository
	Keys        KeyStore
}
