package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/expiration"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/internal/utils"
	"github.com/vidabem/securechat/models"
)

const defaultListLimit = 50

type messageService struct {
	messages   store.MessageRepository
	keys       KeyProvider
	registry   *crypto.Registry
	hasher     *crypto.SearchHasher
	expiration *expiration.Service
	uuid       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewMessageService wires the message pipeline: room keys from the key
// provider, envelopes from the cipher registry, search hashes from the
// hasher, expiry policies from the expiration service.
func NewMessageService(
	messages store.MessageRepository,
	keys KeyProvider,
	registry *crypto.Registry,
	hasher *crypto.SearchHasher,
	expirationSvc *expiration.Service,
	logger *logger.Logger,
) MessageService {
	return &messageService{
		messages:   messages,
		keys:       keys,
		registry:   registry,
		hasher:     hasher,
		expiration: expirationSvc,
		uuid:       utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (m *messageService) Send(ctx context.Context, roomID string, senderID int64, req models.SendMessageRequest) (models.Message, error) {
	if strings.TrimSpace(req.Plaintext) == "" {
		return models.Message{}, ErrEmptyPlaintext
	}

	policy, err := m.expiration.NewPolicy(expiration.TTL(req.TTLSeconds))
	if err != nil {
		return models.Message{}, err
	}

	key, err := m.keys.GetOrCreateRoomKey(ctx, roomID)
	if err != nil {
		return models.Message{}, err
	}

	envelope, err := m.registry.Default().Encrypt([]byte(req.Plaintext), key)
	if err != nil {
		return models.Message{}, err
	}

	hashes := make([]models.SearchHash, 0, len(req.IndexTerms))
	for _, term := range req.IndexTerms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		hashes = append(hashes, m.hasher.Hash(term))
	}

	message := models.Message{
		ID:           m.uuid.Generate(),
		RoomID:       roomID,
		SenderID:     senderID,
		Envelope:     envelope,
		SearchHashes: hashes,
		Expiration:   policy,
		CreatedAt:    policy.CreatedAt,
	}

	if err := m.messages.Save(ctx, message); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// Read fails closed: expiry is evaluated before any key material is
// touched, and a failed integrity check surfaces as the same
// unavailability the reader sees for an expired message.
func (m *messageService) Read(ctx context.Context, id string) (models.DecryptedMessage, error) {
	message, err := m.messages.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.DecryptedMessage{}, fmt.Errorf("%w: %w", ErrMessageUnavailable, err)
		}
		return models.DecryptedMessage{}, err
	}

	return m.decrypt(ctx, message)
}

func (m *messageService) ListRoom(ctx context.Context, roomID string, limit uint64) ([]models.DecryptedMessage, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	messages, err := m.messages.ListRoom(ctx, roomID, limit)
	if err != nil {
		return nil, err
	}

	return m.decryptReadable(ctx, messages), nil
}

func (m *messageService) Search(ctx context.Context, roomID, term string) ([]models.DecryptedMessage, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptySearchTerm
	}

	messages, err := m.messages.Search(ctx, roomID, m.hasher.Hash(term))
	if err != nil {
		return nil, err
	}

	return m.decryptReadable(ctx, messages), nil
}

func (m *messageService) ExpirationStatus(ctx context.Context, id string) (models.ExpirationStatus, error) {
	message, err := m.messages.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ExpirationStatus{}, fmt.Errorf("%w: %w", ErrMessageUnavailable, err)
		}
		return models.ExpirationStatus{}, err
	}

	return m.expiration.Status(message.Expiration.ExpiresAt), nil
}

func (m *messageService) decrypt(ctx context.Context, message models.Message) (models.DecryptedMessage, error) {
	if m.expiration.Status(message.Expiration.ExpiresAt).IsExpired {
		return models.DecryptedMessage{}, fmt.Errorf("%w: expired", ErrMessageUnavailable)
	}

	key, err := m.keys.RoomKey(ctx, message.RoomID)
	if err != nil {
		return models.DecryptedMessage{}, err
	}

	cipher, err := m.registry.ForEnvelope(message.Envelope)
	if err != nil {
		return models.DecryptedMessage{}, err
	}

	plaintext, err := cipher.Decrypt(message.Envelope, key)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "messageService.decrypt").
			Str("message_id", message.ID).
			Str("room_id", message.RoomID).
			Msg("message failed integrity check")
		return models.DecryptedMessage{}, fmt.Errorf("%w: %w", ErrMessageUnavailable, err)
	}

	return models.DecryptedMessage{
		ID:        message.ID,
		RoomID:    message.RoomID,
		SenderID:  message.SenderID,
		Plaintext: plaintext,
		CreatedAt: message.CreatedAt,
	}, nil
}

// decryptReadable drops unavailable messages from a listing instead of
// failing the whole page over one expired or tampered row.
func (m *messageService) decryptReadable(ctx context.Context, messages []models.Message) []models.DecryptedMessage {
	out := make([]models.DecryptedMessage, 0, len(messages))
	for _, message := range messages {
		decrypted, err := m.decrypt(ctx, message)
		if err != nil {
			continue
		}
		out = append(out, decrypted)
	}

	return out
}
