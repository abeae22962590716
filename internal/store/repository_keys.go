package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vidabem/securechat/internal/logger"
)

// keyRepository is the PostgreSQL-backed implementation of [KeyStore].
// It stores only wrapped blobs; raw key material never reaches it.
type keyRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyRepository constructs a [KeyStore] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyStore {
	return &keyRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (k *keyRepository) GetRoomKey(ctx context.Context, roomID string) ([]byte, error) {
	var wrapped []byte
	err := k.DB.QueryRowContext(ctx, getRoomKey, roomID).Scan(&wrapped)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wrapped, nil
}

// SaveRoomKey inserts with ON CONFLICT DO NOTHING. Zero affected rows
// means another writer won the first-use race; the caller must re-read
// the winning key instead of keeping its own.
func (k *keyRepository) SaveRoomKey(ctx context.Context, roomID string, wrapped []byte) error {
	log := logger.FromContext(ctx)

	result, err := k.DB.ExecContext(ctx, saveRoomKey, roomID, wrapped, k.now())
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.SaveRoomKey").
			Str("room_id", roomID).
			Msg("failed to insert room key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if saved == 0 {
		return ErrAlreadyExists
	}

	return nil
}

func (k *keyRepository) DeleteRoomKey(ctx context.Context, roomID string) error {
	log := logger.FromContext(ctx)

	if _, err := k.DB.ExecContext(ctx, deleteRoomKey, roomID); err != nil {
		log.Err(err).
			Str("func", "keyRepository.DeleteRoomKey").
			Str("room_id", roomID).
			Msg("failed to delete room key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (k *keyRepository) GetKeyPair(ctx context.Context, ownerID int64) ([]byte, error) {
	var wrapped []byte
	err := k.DB.QueryRowContext(ctx, getKeyPair, ownerID).Scan(&wrapped)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wrapped, nil
}

func (k *keyRepository) SaveKeyPair(ctx context.Context, ownerID int64, wrapped []byte) error {
	log := logger.FromContext(ctx)

	result, err := k.DB.ExecContext(ctx, saveKeyPair, ownerID, wrapped, k.now())
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.SaveKeyPair").
			Int64("owner_id", ownerID).
			Msg("failed to insert identity key pair")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if saved == 0 {
		return ErrAlreadyExists
	}

	return nil
}
