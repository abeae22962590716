package models

// Algorithm identifiers carried in every envelope. The pair
// (Algorithm, Version) selects the cipher used to produce the
// ciphertext, so future schemes remain decryptable next to old ones.
const (
	AlgorithmAESGCM  = "aes-256-gcm"
	AlgorithmXChaCha = "xchacha20-poly1305"
)

// Versions paired with the algorithm identifiers above.
const (
	VersionAESGCM  = 1
	VersionXChaCha = 2
)

// EncryptedEnvelope is the only form in which message or file content
// may leave the encryption core. The database and transport layers see
// nothing but this bundle plus non-secret metadata.
type EncryptedEnvelope struct {
	// Algorithm names the AEAD scheme that produced the ciphertext.
	Algorithm string `json:"algorithm"`

	// Version is the scheme version paired with Algorithm.
	Version int `json:"version"`

	// Nonce is the unique-per-call initialization vector. Reuse of a
	// nonce under the same key breaks the scheme entirely, so it is
	// generated fresh from the OS CSPRNG on every encryption.
	Nonce []byte `json:"nonce"`

	// Ciphertext is the encrypted payload without the authentication tag.
	Ciphertext []byte `json:"ciphertext"`

	// AuthTag is the AEAD authentication tag, verified before any
	// plaintext is released on decryption.
	AuthTag []byte `json:"auth_tag"`
}

// SearchHash is a deterministic one-way digest of a normalized plaintext
// term. Identical normalized terms produce identical hashes, enabling
// equality search over ciphertext without revealing the term.
type SearchHash string
