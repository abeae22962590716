package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"

	"github.com/vidabem/securechat/models"
)

// SearchHasher produces deterministic one-way digests of normalized
// search terms. Identical normalized terms collide on purpose — that is
// what makes equality search over ciphertext work — while the HMAC key
// keeps the digest non-invertible and useless outside this deployment.
//
// The key is application-wide configuration, not a per-user secret:
// determinism across all writers is required for search to match.
type SearchHasher struct {
	pool sync.Pool
}

// NewSearchHasher constructs a hasher keyed with the deployment-wide
// search key. The internal pool reuses HMAC states across calls to keep
// allocation pressure down on the hot indexing path.
func NewSearchHasher(key string) *SearchHasher {
	keyBytes := []byte(key)
	return &SearchHasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, keyBytes)
			},
		},
	}
}

// Hash normalizes the term (trim surrounding whitespace, case-fold) and
// returns the hex-encoded HMAC-SHA256 digest.
func (s *SearchHasher) Hash(term string) models.SearchHash {
	normalized := strings.ToLower(strings.TrimSpace(term))

	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(normalized))
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return models.SearchHash(hex.EncodeToString(sum))
}
