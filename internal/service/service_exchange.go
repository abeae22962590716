package service

import (
	"context"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/models"
)

type exchangeService struct {
	keys     KeyProvider
	registry *crypto.Registry

	logger *logger.Logger
}

// NewExchangeService wires asymmetric room-key delivery over the key
// provider.
func NewExchangeService(keys KeyProvider, registry *crypto.Registry, logger *logger.Logger) ExchangeService {
	return &exchangeService{
		keys:     keys,
		registry: registry,
		logger:   logger,
	}
}

func (e *exchangeService) PublicKey(ctx context.Context, ownerID int64) (models.PublicKeyExport, error) {
	pair, err := e.keys.UserKeyPair(ctx, ownerID)
	if err != nil {
		return models.PublicKeyExport{}, err
	}

	der, err := pair.ExportPublicKey()
	if err != nil {
		return models.PublicKeyExport{}, err
	}

	return models.PublicKeyExport{OwnerID: ownerID, DER: der}, nil
}

// WrapRoomKey seals the room's key to the recipient's public key. The
// room id is bound into the wrapping, so the blob only unwraps for
// this room.
func (e *exchangeService) WrapRoomKey(ctx context.Context, roomID string, recipientDER []byte) ([]byte, error) {
	recipient, err := crypto.ImportPublicKey(recipientDER)
	if err != nil {
		return nil, err
	}

	key, err := e.keys.GetOrCreateRoomKey(ctx, roomID)
	if err != nil {
		return nil, err
	}

	cipher, err := e.registry.ForKey(key)
	if err != nil {
		return nil, err
	}

	return crypto.WrapRoomKey(key, cipher, recipient)
}

// AcceptRoomKey unwraps with the owner's private key and installs the
// key. First-writer-wins applies: if the room already has a key the
// store reports it and the existing key stays active.
func (e *exchangeService) AcceptRoomKey(ctx context.Context, roomID string, ownerID int64, wrapped []byte) error {
	pair, err := e.keys.UserKeyPair(ctx, ownerID)
	if err != nil {
		return err
	}

	key, err := pair.UnwrapRoomKey(wrapped, roomID, e.registry.Default())
	if err != nil {
		return err
	}

	return e.keys.SetRoomKey(ctx, key)
}

func (e *exchangeService) RotateRoomKey(ctx context.Context, roomID string) error {
	_, err := e.keys.RotateRoomKey(ctx, roomID)
	return err
}
