package crypto

import "github.com/vidabem/securechat/models"

// Cipher is the authenticated-encryption capability the rest of the
// core depends on. Implementations wrap a vetted AEAD from the standard
// or x/crypto libraries; the core never hand-rolls a cipher.
//
// Every Encrypt call must generate a fresh random nonce. Nonce reuse
// under the same key is the single safety-critical failure mode of the
// whole subsystem, and correctness must hold under arbitrary
// concurrent interleaving of Encrypt calls against one key.
type Cipher interface {
	// Algorithm returns the identifier written into envelopes.
	Algorithm() string

	// Version returns the scheme version paired with Algorithm.
	Version() int

	// GenerateKey produces fresh key material from the OS CSPRNG. The
	// returned key carries no room binding; the key manager assigns it.
	GenerateKey() (models.RoomKey, error)

	// Encrypt seals plaintext under key with a fresh random nonce and
	// returns a versioned envelope carrying nonce, ciphertext and tag.
	Encrypt(plaintext []byte, key models.RoomKey) (models.EncryptedEnvelope, error)

	// Decrypt verifies the authentication tag and returns the
	// plaintext. Fails with ErrIntegrityFailure on any tamper and never
	// returns partial plaintext.
	Decrypt(envelope models.EncryptedEnvelope, key models.RoomKey) ([]byte, error)

	// ExportKey serializes key material to a transportable byte form.
	// Exported bytes must only be persisted already wrapped at rest or
	// sent over a secure channel; that is the caller's obligation.
	ExportKey(key models.RoomKey) ([]byte, error)

	// ImportKey rebuilds a room key from exported material, validating
	// its length for this cipher.
	ImportKey(material []byte, roomID string) (models.RoomKey, error)
}
