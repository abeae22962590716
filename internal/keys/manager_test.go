package keys

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/models"
)

// memKeyStore is an in-memory store.KeyStore with first-writer-wins
// semantics, mirroring the SQL implementations.
type memKeyStore struct {
	mu        sync.Mutex
	roomKeys  map[string][]byte
	pairs     map[int64][]byte
	saveCalls int
}

func newMemKeyStore() *memKeyStore {
	return &memKeyStore{
		roomKeys: make(map[string][]byte),
		pairs:    make(map[int64][]byte),
	}
}

func (s *memKeyStore) GetRoomKey(_ context.Context, roomID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.roomKeys[roomID]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return blob, nil
}

func (s *memKeyStore) SaveRoomKey(_ context.Context, roomID string, wrapped []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls++
	if _, ok := s.roomKeys[roomID]; ok {
		return store.ErrAlreadyExists
	}
	s.roomKeys[roomID] = wrapped
	return nil
}

func (s *memKeyStore) DeleteRoomKey(_ context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roomKeys, roomID)
	return nil
}

func (s *memKeyStore) GetKeyPair(_ context.Context, ownerID int64) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.pairs[ownerID]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return blob, nil
}

func (s *memKeyStore) SaveKeyPair(_ context.Context, ownerID int64, wrapped []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pairs[ownerID]; ok {
		return store.ErrAlreadyExists
	}
	s.pairs[ownerID] = wrapped
	return nil
}

func newTestRegistry(t *testing.T) *crypto.Registry {
	t.Helper()
	registry, err := crypto.NewRegistry(crypto.NewAESGCM(), crypto.NewXChaCha())
	require.NoError(t, err)
	return registry
}

func newTestManager(t *testing.T, keyStore store.KeyStore) *Manager {
	t.Helper()
	return NewManager(keyStore, newTestRegistry(t), "passphrase", "salt", logger.Nop())
}

func TestManager_GetOrCreateRoomKey_Idempotent(t *testing.T) {
	manager := newTestManager(t, newMemKeyStore())
	ctx := context.Background()

	first, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, "room-12", first.RoomID)
	assert.Len(t, first.Material, 32)

	second, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestManager_GetOrCreateRoomKey_DistinctRooms(t *testing.T) {
	manager := newTestManager(t, newMemKeyStore())
	ctx := context.Background()

	a, err := manager.GetOrCreateRoomKey(ctx, "room-a")
	require.NoError(t, err)
	b, err := manager.GetOrCreateRoomKey(ctx, "room-b")
	require.NoError(t, err)

	assert.NotEqual(t, a.Material, b.Material)
}

func TestManager_GetOrCreateRoomKey_Concurrent(t *testing.T) {
	keyStore := newMemKeyStore()
	manager := newTestManager(t, keyStore)
	ctx := context.Background()

	const callers = 32
	keysOut := make([]models.RoomKey, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key, err := manager.GetOrCreateRoomKey(ctx, "room-12")
			if assert.NoError(t, err) {
				keysOut[i] = key
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Equal(t, keysOut[0].Material, keysOut[i].Material)
	}
}

func TestManager_GetOrCreateRoomKey_AdoptsWinnerAfterLostRace(t *testing.T) {
	keyStore := newMemKeyStore()
	ctx := context.Background()

	// Another node persisted a key first.
	winner := newTestManager(t, keyStore)
	winnerKey, err := winner.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	// A fresh manager with an empty cache must adopt the stored key
	// rather than mint its own.
	loser := newTestManager(t, keyStore)
	loserKey, err := loser.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	assert.Equal(t, winnerKey.Material, loserKey.Material)
}

func TestManager_RoomKey_NotFound(t *testing.T) {
	manager := newTestManager(t, newMemKeyStore())

	_, err := manager.RoomKey(context.Background(), "missing")
	assert.True(t, errors.Is(err, crypto.ErrKeyNotFound))
}

func TestManager_SetRoomKey(t *testing.T) {
	manager := newTestManager(t, newMemKeyStore())
	ctx := context.Background()

	registry := newTestRegistry(t)
	key, err := registry.Default().GenerateKey()
	require.NoError(t, err)
	key.RoomID = "room-12"

	require.NoError(t, manager.SetRoomKey(ctx, key))

	got, err := manager.RoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, key.Material, got.Material)
}

func TestManager_SetRoomKey_ExistingKeyWins(t *testing.T) {
	manager := newTestManager(t, newMemKeyStore())
	ctx := context.Background()

	existing, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	registry := newTestRegistry(t)
	late, err := registry.Default().GenerateKey()
	require.NoError(t, err)
	late.RoomID = "room-12"

	err = manager.SetRoomKey(ctx, late)
	assert.True(t, errors.Is(err, store.ErrAlreadyExists))

	got, err := manager.RoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, existing.Material, got.Material)
}

func TestManager_RotateRoomKey(t *testing.T) {
	manager := newTestManager(t, newMemKeyStore())
	ctx := context.Background()

	old, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	rotated, err := manager.RotateRoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.NotEqual(t, old.Material, rotated.Material)

	current, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, rotated.Material, current.Material)
}

func TestManager_InvalidateReloadsFromStore(t *testing.T) {
	keyStore := newMemKeyStore()
	manager := newTestManager(t, keyStore)
	ctx := context.Background()

	key, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	manager.Invalidate("room-12")

	savesBefore := keyStore.saveCalls
	reloaded, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, key.Material, reloaded.Material)
	assert.Equal(t, savesBefore, keyStore.saveCalls, "reload must not write a new key")
}

func TestManager_WrongPassphraseFailsClosed(t *testing.T) {
	keyStore := newMemKeyStore()
	ctx := context.Background()

	writer := NewManager(keyStore, newTestRegistry(t), "correct-passphrase", "salt", logger.Nop())
	_, err := writer.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	reader := NewManager(keyStore, newTestRegistry(t), "wrong-passphrase", "salt", logger.Nop())
	_, err = reader.RoomKey(ctx, "room-12")
	assert.True(t, errors.Is(err, crypto.ErrIntegrityFailure))
}

func TestManager_CorruptBlob(t *testing.T) {
	keyStore := newMemKeyStore()
	keyStore.roomKeys["room-12"] = []byte("not json")

	manager := newTestManager(t, keyStore)

	_, err := manager.RoomKey(context.Background(), "room-12")
	assert.True(t, errors.Is(err, ErrCorruptKeyBlob))
}

func TestManager_UserKeyPair_StableAcrossRestarts(t *testing.T) {
	keyStore := newMemKeyStore()
	ctx := context.Background()

	first := newTestManager(t, keyStore)
	pair, err := first.UserKeyPair(ctx, 7)
	require.NoError(t, err)

	firstPub, err := pair.ExportPublicKey()
	require.NoError(t, err)

	// A fresh manager over the same store must load the same pair.
	second := newTestManager(t, keyStore)
	reloaded, err := second.UserKeyPair(ctx, 7)
	require.NoError(t, err)

	secondPub, err := reloaded.ExportPublicKey()
	require.NoError(t, err)
	assert.Equal(t, firstPub, secondPub)
}

func TestManager_Reset(t *testing.T) {
	keyStore := newMemKeyStore()
	manager := newTestManager(t, keyStore)
	ctx := context.Background()

	key, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)

	manager.Reset()

	reloaded, err := manager.GetOrCreateRoomKey(ctx, "room-12")
	require.NoError(t, err)
	assert.Equal(t, key.Material, reloaded.Material)
}
