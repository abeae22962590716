package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/vidabem/securechat/models"
)

const rsaKeyBits = 3072

// KeyPair is the local identity's asymmetric key pair, used to wrap and
// unwrap room keys during exchange. The private key is held behind this
// handle and is never exposed to callers as disclosed material; only
// the key manager serializes it, and only into wrapped-at-rest storage.
type KeyPair struct {
	private *rsa.PrivateKey
}

// GenerateKeyPair creates a fresh RSA-3072 key pair from the OS CSPRNG.
func GenerateKeyPair() (*KeyPair, error) {
	private, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	return &KeyPair{private: private}, nil
}

// ExportPublicKey serializes the public half as PKIX DER, the
// transportable form distributed to other participants out-of-band.
func (k *KeyPair) ExportPublicKey() ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(&k.private.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("export public key: %w", err)
	}

	return der, nil
}

// ImportPublicKey parses a PKIX DER public key received from another
// participant. Only RSA keys are accepted.
func ImportPublicKey(der []byte) (*rsa.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("import public key: %w", err)
	}

	public, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("import public key: unexpected key type %T", parsed)
	}

	return public, nil
}

// WrapRoomKey encrypts a room key's exported material to a recipient's
// public key with RSA-OAEP/SHA-256 so it can travel over the exchange
// channel. The wrapping label binds the blob to its room, so a wrapped
// key replayed for a different room fails to unwrap.
func WrapRoomKey(key models.RoomKey, cipher Cipher, recipient *rsa.PublicKey) ([]byte, error) {
	material, err := cipher.ExportKey(key)
	if err != nil {
		return nil, fmt.Errorf("wrap room key: %w", err)
	}

	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, recipient, material, []byte(key.RoomID))
	if err != nil {
		return nil, fmt.Errorf("wrap room key: %w", err)
	}

	return wrapped, nil
}

// UnwrapRoomKey decrypts a wrapped room key received out-of-band and
// rebuilds it through the cipher's import path. Fails closed on any
// OAEP or length error.
func (k *KeyPair) UnwrapRoomKey(wrapped []byte, roomID string, cipher Cipher) (models.RoomKey, error) {
	material, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, k.private, wrapped, []byte(roomID))
	if err != nil {
		return models.RoomKey{}, fmt.Errorf("unwrap room key: %w", ErrIntegrityFailure)
	}

	key, err := cipher.ImportKey(material, roomID)
	if err != nil {
		return models.RoomKey{}, fmt.Errorf("unwrap room key: %w", err)
	}

	return key, nil
}

// Export serializes the private key as PKCS#8 DER. Reserved for the key
// manager's wrapped-at-rest persistence; never hand the result to
// anything that has not encrypted it first.
func (k *KeyPair) Export() ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(k.private)
	if err != nil {
		return nil, fmt.Errorf("export key pair: %w", err)
	}

	return der, nil
}

// ImportKeyPair rebuilds a key pair from PKCS#8 DER produced by Export.
func ImportKeyPair(der []byte) (*KeyPair, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("import key pair: %w", err)
	}

	private, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("import key pair: unexpected key type %T", parsed)
	}

	return &KeyPair{private: private}, nil
}
