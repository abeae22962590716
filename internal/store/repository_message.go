package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It stores envelopes in the "messages" table and
// search hashes in "message_search_hashes", and never sees plaintext.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with
// structured fields (message_id, room_id, row counts).
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// Save stores the message and its search hashes in one transaction so a
// message is never findable by a hash that points at nothing.
func (m *messageRepository) Save(ctx context.Context, message models.Message) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.Save").
			Str("message_id", message.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	expiresAt := nullableTime(message.Expiration.ExpiresAt)
	if _, err := tx.ExecContext(ctx, saveMessage,
		message.ID,
		message.RoomID,
		message.SenderID,
		message.Envelope.Algorithm,
		message.Envelope.Version,
		message.Envelope.Nonce,
		message.Envelope.Ciphertext,
		message.Envelope.AuthTag,
		message.Expiration.TTLSeconds,
		message.CreatedAt,
		expiresAt,
	); err != nil {
		log.Err(err).
			Str("func", "messageRepository.Save").
			Str("message_id", message.ID).
			Str("room_id", message.RoomID).
			Msg("failed to insert message")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, hash := range message.SearchHashes {
		if _, err := tx.ExecContext(ctx, saveSearchHash, message.ID, string(hash)); err != nil {
			log.Err(err).
				Str("func", "messageRepository.Save").
				Str("message_id", message.ID).
				Msg("failed to insert search hash")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "messageRepository.Save").
			Str("message_id", message.ID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Get returns a single stored message by id. Search hashes are not
// loaded on the read path; they only serve the search query.
func (m *messageRepository) Get(ctx context.Context, id string) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := m.DB.QueryRowContext(ctx, getMessage, id)
	message, err := scanMessage(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "messageRepository.Get").
			Str("message_id", id).
			Msg("failed to scan message row")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return message, nil
}

// ListRoom returns the newest messages of a room, most recent first.
func (m *messageRepository) ListRoom(ctx context.Context, roomID string, limit uint64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRoomQuery(roomID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.ListRoom").
			Str("room_id", roomID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.queryMessages(ctx, "messageRepository.ListRoom", query, args...)
}

// Search returns the messages of a room matching any of the given
// search hashes.
func (m *messageRepository) Search(ctx context.Context, roomID string, hashes ...models.SearchHash) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	if len(hashes) == 0 {
		return []models.Message{}, nil
	}

	query, args, err := buildSearchQuery(roomID, hashes)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.Search").
			Str("room_id", roomID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.queryMessages(ctx, "messageRepository.Search", query, args...)
}

// DeleteExpired purges every message whose expires_at has passed.
func (m *messageRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := m.DB.ExecContext(ctx, deleteExpiredMessages, now)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteExpired").
			Msg("failed to delete expired messages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}

func (m *messageRepository) queryMessages(ctx context.Context, caller, query string, args ...any) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Message, 0, 50)
	for rows.Next() {
		message, scanErr := scanMessage(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// scanMessage maps one row in messageColumns order into a model.
func scanMessage(scan func(dest ...any) error) (models.Message, error) {
	var (
		message   models.Message
		expiresAt sql.NullTime
	)

	err := scan(
		&message.ID,
		&message.RoomID,
		&message.SenderID,
		&message.Envelope.Algorithm,
		&message.Envelope.Version,
		&message.Envelope.Nonce,
		&message.Envelope.Ciphertext,
		&message.Envelope.AuthTag,
		&message.Expiration.TTLSeconds,
		&message.CreatedAt,
		&expiresAt,
	)
	if err != nil {
		return models.Message{}, err
	}

	message.Expiration.CreatedAt = message.CreatedAt
	if expiresAt.Valid {
		message.Expiration.ExpiresAt = expiresAt.Time
	}

	return message, nil
}

// nullableTime maps a zero time to SQL NULL ("never expires").
func nullableTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
