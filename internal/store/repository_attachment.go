package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/models"
)

// attachmentRepository is the PostgreSQL-backed implementation of
// [AttachmentRepository]. Blobs arrive already encrypted; the table
// stores the envelope next to the opaque storage name.
type attachmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttachmentRepository constructs an [AttachmentRepository] backed
// by the provided database connection and logger.
func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	return &attachmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *attachmentRepository) Save(ctx context.Context, attachment models.Attachment) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, saveAttachment,
		attachment.ID,
		attachment.RoomID,
		attachment.OwnerID,
		attachment.StorageName,
		attachment.DetectedType,
		attachment.SizeBytes,
		attachment.Envelope.Algorithm,
		attachment.Envelope.Version,
		attachment.Envelope.Nonce,
		attachment.Envelope.Ciphertext,
		attachment.Envelope.AuthTag,
		attachment.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.Save").
			Str("attachment_id", attachment.ID).
			Str("room_id", attachment.RoomID).
			Msg("failed to insert attachment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if saved == 0 {
		return ErrNothingSaved
	}

	return nil
}

func (a *attachmentRepository) Get(ctx context.Context, id string) (models.Attachment, error) {
	log := logger.FromContext(ctx)

	var attachment models.Attachment
	err := a.DB.QueryRowContext(ctx, getAttachment, id).Scan(
		&attachment.ID,
		&attachment.RoomID,
		&attachment.OwnerID,
		&attachment.StorageName,
		&attachment.DetectedType,
		&attachment.SizeBytes,
		&attachment.Envelope.Algorithm,
		&attachment.Envelope.Version,
		&attachment.Envelope.Nonce,
		&attachment.Envelope.Ciphertext,
		&attachment.Envelope.AuthTag,
		&attachment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Attachment{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "attachmentRepository.Get").
			Str("attachment_id", id).
			Msg("failed to scan attachment row")
		return models.Attachment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attachment, nil
}
