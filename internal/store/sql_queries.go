package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/vidabem/securechat/models"
)

const (
	saveMessage = `
		INSERT INTO messages (
			id,
			room_id,
			sender_id,
			algorithm,
			version,
			nonce,
			ciphertext,
			auth_tag,
			ttl_seconds,
			created_at,
			expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	saveSearchHash = `
		INSERT INTO message_search_hashes (message_id, hash)
		VALUES ($1, $2);`

	getMessage = `
		SELECT
			id,
			room_id,
			sender_id,
			algorithm,
			version,
			nonce,
			ciphertext,
			auth_tag,
			ttl_seconds,
			created_at,
			expires_at
		FROM messages
		WHERE id = $1;`

	deleteExpiredMessages = `
		DELETE FROM messages
		WHERE expires_at IS NOT NULL AND expires_at < $1;`

	saveAttachment = `
		INSERT INTO attachments (
			id,
			room_id,
			owner_id,
			storage_name,
			detected_type,
			size_bytes,
			algorithm,
			version,
			nonce,
			ciphertext,
			auth_tag,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	getAttachment = `
		SELECT
			id,
			room_id,
			owner_id,
			storage_name,
			detected_type,
			size_bytes,
			algorithm,
			version,
			nonce,
			ciphertext,
			auth_tag,
			created_at
		FROM attachments
		WHERE id = $1;`

	saveRoomKey = `
		INSERT INTO room_keys (room_id, wrapped, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_id) DO NOTHING;`

	getRoomKey = `
		SELECT wrapped FROM room_keys WHERE room_id = $1;`

	deleteRoomKey = `
		DELETE FROM room_keys WHERE room_id = $1;`

	saveKeyPair = `
		INSERT INTO identity_keys (owner_id, wrapped, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO NOTHING;`

	getKeyPair = `
		SELECT wrapped FROM identity_keys WHERE owner_id = $1;`
)

// messageColumns is the canonical column order shared by the squirrel
// builders below and the row scanner in repository_message.go.
var messageColumns = []string{
	"id", "room_id", "sender_id",
	"algorithm", "version",
	"nonce", "ciphertext", "auth_tag",
	"ttl_seconds", "created_at", "expires_at",
}

// buildListRoomQuery builds the newest-first room listing query.
func buildListRoomQuery(roomID string, limit uint64) (string, []any, error) {
	return sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSearchQuery builds the equality-search query joining the hash
// index table. squirrel generates the IN clause for the hash slice.
func buildSearchQuery(roomID string, hashes []models.SearchHash) (string, []any, error) {
	values := make([]string, len(hashes))
	for i, h := range hashes {
		values[i] = string(h)
	}

	cols := make([]string, len(messageColumns))
	for i, c := range messageColumns {
		cols[i] = "m." + c
	}

	return sq.Select(cols...).
		Distinct().
		From("messages m").
		Join("message_search_hashes h ON h.message_id = m.id").
		Where(sq.Eq{"m.room_id": roomID}).
		Where(sq.Eq{"h.hash": values}).
		OrderBy("m.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
