package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/vidabem/securechat/models"
)

// xchachaCipher implements [Cipher] with XChaCha20-Poly1305 (version 2).
// The 24-byte extended nonce makes random nonces safe at any volume,
// which is why this scheme is registered alongside GCM for deployments
// with very high message rates.
type xchachaCipher struct{}

// NewXChaCha constructs the XChaCha20-Poly1305 [Cipher].
func NewXChaCha() Cipher {
	return &xchachaCipher{}
}

func (c *xchachaCipher) Algorithm() string { return models.AlgorithmXChaCha }

func (c *xchachaCipher) Version() int { return models.VersionXChaCha }

func (c *xchachaCipher) GenerateKey() (models.RoomKey, error) {
	material := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, material); err != nil {
		return models.RoomKey{}, fmt.Errorf("generate key: %w", err)
	}

	return models.RoomKey{
		Algorithm: c.Algorithm(),
		Version:   c.Version(),
		Material:  material,
	}, nil
}

func (c *xchachaCipher) Encrypt(plaintext []byte, key models.RoomKey) (models.EncryptedEnvelope, error) {
	if len(key.Material) != chacha20poly1305.KeySize {
		return models.EncryptedEnvelope{}, ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.NewX(key.Material)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	tagStart := len(sealed) - aead.Overhead()

	return models.EncryptedEnvelope{
		Algorithm:  c.Algorithm(),
		Version:    c.Version(),
		Nonce:      nonce,
		Ciphertext: sealed[:tagStart],
		AuthTag:    sealed[tagStart:],
	}, nil
}

func (c *xchachaCipher) Decrypt(envelope models.EncryptedEnvelope, key models.RoomKey) ([]byte, error) {
	if len(key.Material) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.NewX(key.Material)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	if len(envelope.Nonce) != aead.NonceSize() || len(envelope.AuthTag) != aead.Overhead() {
		return nil, ErrInvalidEnvelope
	}

	sealed := make([]byte, 0, len(envelope.Ciphertext)+len(envelope.AuthTag))
	sealed = append(sealed, envelope.Ciphertext...)
	sealed = append(sealed, envelope.AuthTag...)

	plaintext, err := aead.Open(nil, envelope.Nonce, sealed, nil)
	if err != nil {
		return nil, ErrIntegrityFailure
	}

	return plaintext, nil
}

func (c *xchachaCipher) ExportKey(key models.RoomKey) ([]byte, error) {
	if len(key.Material) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeySize
	}

	exported := make([]byte, chacha20poly1305.KeySize)
	copy(exported, key.Material)
	return exported, nil
}

func (c *xchachaCipher) ImportKey(material []byte, roomID string) (models.RoomKey, error) {
	if len(material) != chacha20poly1305.KeySize {
		return models.RoomKey{}, ErrInvalidKeySize
	}

	imported := make([]byte, chacha20poly1305.KeySize)
	copy(imported, material)

	return models.RoomKey{
		RoomID:    roomID,
		Algorithm: c.Algorithm(),
		Version:   c.Version(),
		Material:  imported,
	}, nil
}
