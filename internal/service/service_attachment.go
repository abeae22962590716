package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/internal/upload"
	"github.com/vidabem/securechat/internal/utils"
	"github.com/vidabem/securechat/models"
)

type attachmentService struct {
	attachments store.AttachmentRepository
	keys        KeyProvider
	registry    *crypto.Registry
	validator   *upload.Validator
	scanner     upload.Scanner
	policy      upload.Policy
	namer       *upload.Namer
	uuid        *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAttachmentService wires the file admission pipeline in front of
// the encrypted attachment store.
func NewAttachmentService(
	attachments store.AttachmentRepository,
	keys KeyProvider,
	registry *crypto.Registry,
	validator *upload.Validator,
	scanner upload.Scanner,
	policy upload.Policy,
	logger *logger.Logger,
) AttachmentService {
	return &attachmentService{
		attachments: attachments,
		keys:        keys,
		registry:    registry,
		validator:   validator,
		scanner:     scanner,
		policy:      policy,
		namer:       upload.NewNamer(),
		uuid:        utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Upload admits a file only after every gate passes: content-detected
// type, size cap, then the malware verdict under the active policy.
// The plaintext bytes are encrypted before anything is persisted.
func (a *attachmentService) Upload(ctx context.Context, roomID string, ownerID int64, data []byte) (models.Attachment, error) {
	validation, err := a.validator.Validate(data)
	if err != nil {
		return models.Attachment{}, err
	}

	scan, scanErr := a.scanner.Scan(ctx, data)
	if err := a.policy.Admit(scan); err != nil {
		if scanErr != nil && errors.Is(err, upload.ErrScanFailed) {
			return models.Attachment{}, fmt.Errorf("%w: %w", err, scanErr)
		}
		return models.Attachment{}, err
	}
	if scanErr != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "attachmentService.Upload").
			Str("room_id", roomID).
			Str("policy", a.policy.String()).
			Msg("admitting file without scan verdict")
	}

	key, err := a.keys.GetOrCreateRoomKey(ctx, roomID)
	if err != nil {
		return models.Attachment{}, err
	}

	envelope, err := a.registry.Default().Encrypt(data, key)
	if err != nil {
		return models.Attachment{}, err
	}

	attachment := models.Attachment{
		ID:           a.uuid.Generate(),
		RoomID:       roomID,
		OwnerID:      ownerID,
		StorageName:  a.namer.StorageName(validation.DetectedType),
		DetectedType: validation.DetectedType,
		SizeBytes:    validation.SizeBytes,
		Envelope:     envelope,
		CreatedAt:    a.now(),
	}

	if err := a.attachments.Save(ctx, attachment); err != nil {
		return models.Attachment{}, err
	}

	return attachment, nil
}

func (a *attachmentService) Download(ctx context.Context, id string) (models.Attachment, []byte, error) {
	attachment, err := a.attachments.Get(ctx, id)
	if err != nil {
		return models.Attachment{}, nil, err
	}

	key, err := a.keys.RoomKey(ctx, attachment.RoomID)
	if err != nil {
		return models.Attachment{}, nil, err
	}

	cipher, err := a.registry.ForEnvelope(attachment.Envelope)
	if err != nil {
		return models.Attachment{}, nil, err
	}

	data, err := cipher.Decrypt(attachment.Envelope, key)
	if err != nil {
		return models.Attachment{}, nil, err
	}

	return attachment, data, nil
}
