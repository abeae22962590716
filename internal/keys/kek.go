package keys

import "golang.org/x/crypto/argon2"

// Argon2id parameters for stretching the configured passphrase into
// the key-encryption key (OWASP first recommended option).
const (
	kekIterations  = 1
	kekMemoryKiB   = 64 * 1024
	kekParallelism = 4
	kekLength      = 32
)

// DeriveKEK stretches passphrase and salt into 32 bytes of
// key-encryption-key material. The same passphrase and salt always
// produce the same KEK, so both must stay stable for the lifetime of
// the deployment.
func DeriveKEK(passphrase, salt string) []byte {
	return argon2.IDKey([]byte(passphrase), []byte(salt), kekIterations, kekMemoryKiB, kekParallelism, kekLength)
}
