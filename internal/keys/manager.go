// Package keys owns the room-key lifecycle: idempotent get-or-create,
// rotation, in-memory caching and at-rest wrapping of every key that
// reaches persistent storage.
package keys

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/models"
)

// wrappedBlob is the persisted form of a room key: the raw material
// sealed under the KEK, plus the scheme the key belongs to so it can
// be rebuilt on load.
type wrappedBlob struct {
	Algorithm string                   `json:"algorithm"`
	Version   int                      `json:"version"`
	Envelope  models.EncryptedEnvelope `json:"envelope"`
}

// pairBlob is the persisted form of an identity key pair: the PKCS#8
// DER sealed under the KEK.
type pairBlob struct {
	Envelope models.EncryptedEnvelope `json:"envelope"`
}

// Manager hands out room keys. A room has exactly one active key: the
// first caller to need it creates it, every later caller gets the same
// one, and two callers racing on first use converge on a single key
// through the store's first-writer-wins insert.
//
// Keys never reach the store raw. Material is sealed under a KEK
// derived from the configured passphrase before it is persisted, and
// unwrapped again on load.
type Manager struct {
	store    store.KeyStore
	registry *crypto.Registry
	logger   *logger.Logger
	kek      models.RoomKey

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	cacheMu sync.RWMutex
	cache   map[string]models.RoomKey

	pairMu sync.Mutex
	pairs  map[int64]*crypto.KeyPair
}

// NewManager constructs a [Manager] over the given key store. The KEK
// is derived once from passphrase and salt; the derived material is
// bound to the registry's default scheme.
func NewManager(keyStore store.KeyStore, registry *crypto.Registry, passphrase, salt string, log *logger.Logger) *Manager {
	def := registry.Default()

	return &Manager{
		store:    keyStore,
		registry: registry,
		logger:   log,
		kek: models.RoomKey{
			Algorithm: def.Algorithm(),
			Version:   def.Version(),
			Material:  DeriveKEK(passphrase, salt),
		},
		locks: make(map[string]*sync.Mutex),
		cache: make(map[string]models.RoomKey),
		pairs: make(map[int64]*crypto.KeyPair),
	}
}

// GetOrCreateRoomKey returns the active key of a room, creating it on
// first use. The call is idempotent: concurrent callers for the same
// room all receive the identical key, whichever of them persisted it.
func (m *Manager) GetOrCreateRoomKey(ctx context.Context, roomID string) (models.RoomKey, error) {
	if key, ok := m.cached(roomID); ok {
		return key, nil
	}

	lock := m.lockFor(roomID)
	lock.Lock()
	defer lock.Unlock()

	// Another caller may have filled the cache while we waited.
	if key, ok := m.cached(roomID); ok {
		return key, nil
	}

	key, err := m.loadRoomKey(ctx, roomID)
	if err == nil {
		m.remember(key)
		return key, nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		return models.RoomKey{}, err
	}

	key, err = m.createRoomKey(ctx, roomID)
	if err != nil {
		return models.RoomKey{}, err
	}

	m.remember(key)
	return key, nil
}

// RoomKey returns the active key of a room without creating one.
// Returns crypto.ErrKeyNotFound when the room has no key.
func (m *Manager) RoomKey(ctx context.Context, roomID string) (models.RoomKey, error) {
	if key, ok := m.cached(roomID); ok {
		return key, nil
	}

	key, err := m.loadRoomKey(ctx, roomID)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.RoomKey{}, crypto.ErrKeyNotFound
		}
		return models.RoomKey{}, err
	}

	m.remember(key)
	return key, nil
}

// SetRoomKey persists a key received from outside, typically unwrapped
// from a peer's key exchange. The store's first-writer-wins rule
// applies: if the room already has a key the call returns
// store.ErrAlreadyExists and the existing key stays active.
func (m *Manager) SetRoomKey(ctx context.Context, key models.RoomKey) error {
	if key.RoomID == "" {
		return fmt.Errorf("%w: key carries no room", crypto.ErrInvalidKeySize)
	}

	lock := m.lockFor(key.RoomID)
	lock.Lock()
	defer lock.Unlock()

	blob, err := m.wrapKey(key)
	if err != nil {
		return err
	}

	if err := m.store.SaveRoomKey(ctx, key.RoomID, blob); err != nil {
		return err
	}

	m.remember(key)
	return nil
}

// RotateRoomKey replaces the active key of a room with a fresh one.
// Messages sealed under the old key become unreadable, which is the
// intended effect of rotation after a suspected compromise.
func (m *Manager) RotateRoomKey(ctx context.Context, roomID string) (models.RoomKey, error) {
	lock := m.lockFor(roomID)
	lock.Lock()
	defer lock.Unlock()

	m.forget(roomID)

	if err := m.store.DeleteRoomKey(ctx, roomID); err != nil {
		return models.RoomKey{}, err
	}

	key, err := m.createRoomKey(ctx, roomID)
	if err != nil {
		return models.RoomKey{}, err
	}

	m.remember(key)
	return key, nil
}

// Invalidate drops the cached key of a room. The next access reloads
// it from the store.
func (m *Manager) Invalidate(roomID string) {
	m.forget(roomID)
}

// Reset drops every cached key and key pair. Persisted wrapped keys
// are untouched.
func (m *Manager) Reset() {
	m.cacheMu.Lock()
	m.cache = make(map[string]models.RoomKey)
	m.cacheMu.Unlock()

	m.pairMu.Lock()
	m.pairs = make(map[int64]*crypto.KeyPair)
	m.pairMu.Unlock()
}

// UserKeyPair returns the identity key pair of a user, generating and
// persisting one on first use. Like room keys, a racing first use
// converges on the pair that won the insert.
func (m *Manager) UserKeyPair(ctx context.Context, ownerID int64) (*crypto.KeyPair, error) {
	m.pairMu.Lock()
	defer m.pairMu.Unlock()

	if pair, ok := m.pairs[ownerID]; ok {
		return pair, nil
	}

	pair, err := m.loadKeyPair(ctx, ownerID)
	if err == nil {
		m.pairs[ownerID] = pair
		return pair, nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		return nil, err
	}

	pair, err = crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	blob, err := m.wrapKeyPair(pair)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveKeyPair(ctx, ownerID, blob); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			return nil, err
		}
		// Lost the first-use race; adopt the winner's pair.
		pair, err = m.loadKeyPair(ctx, ownerID)
		if err != nil {
			return nil, err
		}
	}

	m.pairs[ownerID] = pair
	return pair, nil
}

// createRoomKey generates, wraps and persists a fresh key for the
// room. When the insert loses the first-use race the winner's key is
// loaded and returned instead. Callers must hold the room lock.
func (m *Manager) createRoomKey(ctx context.Context, roomID string) (models.RoomKey, error) {
	key, err := m.registry.Default().GenerateKey()
	if err != nil {
		return models.RoomKey{}, err
	}
	key.RoomID = roomID

	blob, err := m.wrapKey(key)
	if err != nil {
		return models.RoomKey{}, err
	}

	err = m.store.SaveRoomKey(ctx, roomID, blob)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		return models.RoomKey{}, err
	}

	m.logger.Debug().
		Str("func", "Manager.createRoomKey").
		Str("room_id", roomID).
		Msg("lost first-use race, adopting persisted key")

	return m.loadRoomKey(ctx, roomID)
}

func (m *Manager) loadRoomKey(ctx context.Context, roomID string) (models.RoomKey, error) {
	blob, err := m.store.GetRoomKey(ctx, roomID)
	if err != nil {
		return models.RoomKey{}, err
	}

	return m.unwrapKey(roomID, blob)
}

func (m *Manager) loadKeyPair(ctx context.Context, ownerID int64) (*crypto.KeyPair, error) {
	blob, err := m.store.GetKeyPair(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var decoded pairBlob
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptKeyBlob, err)
	}

	kekCipher, err := m.registry.ForEnvelope(decoded.Envelope)
	if err != nil {
		return nil, err
	}

	der, err := kekCipher.Decrypt(decoded.Envelope, m.kek)
	if err != nil {
		return nil, err
	}

	return crypto.ImportKeyPair(der)
}

// wrapKey seals raw material under the KEK and encodes the blob the
// store persists.
func (m *Manager) wrapKey(key models.RoomKey) ([]byte, error) {
	keyCipher, err := m.registry.ForKey(key)
	if err != nil {
		return nil, err
	}

	material, err := keyCipher.ExportKey(key)
	if err != nil {
		return nil, err
	}

	envelope, err := m.registry.Default().Encrypt(material, m.kek)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(wrappedBlob{
		Algorithm: key.Algorithm,
		Version:   key.Version,
		Envelope:  envelope,
	})
	if err != nil {
		return nil, fmt.Errorf("encode wrapped key: %w", err)
	}

	return blob, nil
}

func (m *Manager) unwrapKey(roomID string, blob []byte) (models.RoomKey, error) {
	var decoded wrappedBlob
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return models.RoomKey{}, fmt.Errorf("%w: %w", ErrCorruptKeyBlob, err)
	}

	kekCipher, err := m.registry.ForEnvelope(decoded.Envelope)
	if err != nil {
		return models.RoomKey{}, err
	}

	material, err := kekCipher.Decrypt(decoded.Envelope, m.kek)
	if err != nil {
		return models.RoomKey{}, err
	}

	keyCipher, err := m.registry.ForKey(models.RoomKey{Algorithm: decoded.Algorithm, Version: decoded.Version})
	if err != nil {
		return models.RoomKey{}, err
	}

	return keyCipher.ImportKey(material, roomID)
}

func (m *Manager) wrapKeyPair(pair *crypto.KeyPair) ([]byte, error) {
	der, err := pair.Export()
	if err != nil {
		return nil, err
	}

	envelope, err := m.registry.Default().Encrypt(der, m.kek)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(pairBlob{Envelope: envelope})
	if err != nil {
		return nil, fmt.Errorf("encode wrapped key pair: %w", err)
	}

	return blob, nil
}

func (m *Manager) lockFor(roomID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[roomID] = lock
	}

	return lock
}

func (m *Manager) cached(roomID string) (models.RoomKey, bool) {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	key, ok := m.cache[roomID]
	return key, ok
}

func (m *Manager) remember(key models.RoomKey) {
	m.cacheMu.Lock()
	m.cache[key.RoomID] = key
	m.cacheMu.Unlock()
}

func (m *Manager) forget(roomID string) {
	m.cacheMu.Lock()
	delete(m.cache, roomID)
	m.cacheMu.Unlock()
}
