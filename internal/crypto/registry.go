package crypto

import (
	"fmt"

	"github.com/vidabem/securechat/models"
)

// Registry maps (algorithm, version) pairs to ciphers so that old
// envelopes stay decryptable after the default scheme moves on. The
// first registered cipher is the one used for new envelopes.
type Registry struct {
	ciphers map[string]Cipher
	order   []Cipher
}

// NewRegistry builds a registry from the given ciphers. At least one
// cipher is required; the first becomes the default for encryption.
func NewRegistry(ciphers ...Cipher) (*Registry, error) {
	if len(ciphers) == 0 {
		return nil, fmt.Errorf("registry requires at least one cipher")
	}

	r := &Registry{
		ciphers: make(map[string]Cipher, len(ciphers)),
		order:   make([]Cipher, 0, len(ciphers)),
	}
	for _, c := range ciphers {
		id := schemeID(c.Algorithm(), c.Version())
		if _, dup := r.ciphers[id]; dup {
			return nil, fmt.Errorf("duplicate cipher registration: %s", id)
		}
		r.ciphers[id] = c
		r.order = append(r.order, c)
	}

	return r, nil
}

// Default returns the cipher used for new envelopes.
func (r *Registry) Default() Cipher {
	return r.order[0]
}

// ForEnvelope returns the cipher able to open the given envelope, or
// ErrUnsupportedVersion when the (algorithm, version) pair is unknown
// to this build.
func (r *Registry) ForEnvelope(envelope models.EncryptedEnvelope) (Cipher, error) {
	c, ok := r.ciphers[schemeID(envelope.Algorithm, envelope.Version)]
	if !ok {
		return nil, fmt.Errorf("%w: %s v%d", ErrUnsupportedVersion, envelope.Algorithm, envelope.Version)
	}
	return c, nil
}

// ForKey returns the cipher matching a stored key's scheme, falling
// back to ErrUnsupportedVersion for keys produced by an unknown build.
func (r *Registry) ForKey(key models.RoomKey) (Cipher, error) {
	c, ok := r.ciphers[schemeID(key.Algorithm, key.Version)]
	if !ok {
		return nil, fmt.Errorf("%w: %s v%d", ErrUnsupportedVersion, key.Algorithm, key.Version)
	}
	return c, nil
}

func schemeID(algorithm string, version int) string {
	return fmt.Sprintf("%s/%d", algorithm, version)
}
