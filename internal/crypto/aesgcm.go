package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vidabem/securechat/models"
)

const aesKeyLen = 32 // 256 bits

// aesGCMCipher implements [Cipher] with AES-256-GCM from the standard
// library. It is the default scheme for new envelopes (version 1).
type aesGCMCipher struct{}

// NewAESGCM constructs the AES-256-GCM [Cipher].
func NewAESGCM() Cipher {
	return &aesGCMCipher{}
}

func (c *aesGCMCipher) Algorithm() string { return models.AlgorithmAESGCM }

func (c *aesGCMCipher) Version() int { return models.VersionAESGCM }

// GenerateKey implements [Cipher]. It reads 32 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (c *aesGCMCipher) GenerateKey() (models.RoomKey, error) {
	material := make([]byte, aesKeyLen)
	if _, err := io.ReadFull(rand.Reader, material); err != nil {
		return models.RoomKey{}, fmt.Errorf("generate key: %w", err)
	}

	return models.RoomKey{
		Algorithm: c.Algorithm(),
		Version:   c.Version(),
		Material:  material,
	}, nil
}

// Encrypt implements [Cipher]. The nonce is 12 random bytes generated
// per call; the GCM tag is split off the sealed output and carried in
// its own envelope field so the wire format is explicit about it.
func (c *aesGCMCipher) Encrypt(plaintext []byte, key models.RoomKey) (models.EncryptedEnvelope, error) {
	gcm, err := c.aead(key)
	if err != nil {
		return models.EncryptedEnvelope{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	tagStart := len(sealed) - gcm.Overhead()

	return models.EncryptedEnvelope{
		Algorithm:  c.Algorithm(),
		Version:    c.Version(),
		Nonce:      nonce,
		Ciphertext: sealed[:tagStart],
		AuthTag:    sealed[tagStart:],
	}, nil
}

// Decrypt implements [Cipher]. The tag is rejoined to the ciphertext
// and verified by Open before any plaintext is released.
func (c *aesGCMCipher) Decrypt(envelope models.EncryptedEnvelope, key models.RoomKey) ([]byte, error) {
	gcm, err := c.aead(key)
	if err != nil {
		return nil, err
	}

	if len(envelope.Nonce) != gcm.NonceSize() || len(envelope.AuthTag) != gcm.Overhead() {
		return nil, ErrInvalidEnvelope
	}

	sealed := make([]byte, 0, len(envelope.Ciphertext)+len(envelope.AuthTag))
	sealed = append(sealed, envelope.Ciphertext...)
	sealed = append(sealed, envelope.AuthTag...)

	plaintext, err := gcm.Open(nil, envelope.Nonce, sealed, nil)
	if err != nil {
		return nil, ErrIntegrityFailure
	}

	return plaintext, nil
}

// ExportKey implements [Cipher]. It returns a copy of the raw material
// after validating its length.
func (c *aesGCMCipher) ExportKey(key models.RoomKey) ([]byte, error) {
	if len(key.Material) != aesKeyLen {
		return nil, ErrInvalidKeySize
	}

	exported := make([]byte, aesKeyLen)
	copy(exported, key.Material)
	return exported, nil
}

// ImportKey implements [Cipher].
func (c *aesGCMCipher) ImportKey(material []byte, roomID string) (models.RoomKey, error) {
	if len(material) != aesKeyLen {
		return models.RoomKey{}, ErrInvalidKeySize
	}

	imported := make([]byte, aesKeyLen)
	copy(imported, material)

	return models.RoomKey{
		RoomID:    roomID,
		Algorithm: c.Algorithm(),
		Version:   c.Version(),
		Material:  imported,
	}, nil
}

func (c *aesGCMCipher) aead(key models.RoomKey) (cipher.AEAD, error) {
	if len(key.Material) != aesKeyLen {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key.Material)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
