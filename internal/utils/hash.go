package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// Hasher computes HMAC-SHA256 digests under a fixed key.
//
// Hash instances are pooled, so a single Hasher can be shared by many
// goroutines on hot paths without allocating a new HMAC per call.
type Hasher struct {
	pool sync.Pool
}

// NewHasher creates a Hasher for key.
//
// Example usage:
//
//	hasher := utils.NewHasher([]byte("my-secret-key"))
//	digest := hasher.Sum([]byte("some data"))
func NewHasher(key []byte) *Hasher {
	k := append([]byte(nil), key...)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, k)
			},
		},
	}
}

// Sum returns the HMAC-SHA256 digest of data.
//
// Behavior:
//   - takes a hash.Hash from the pool and resets it
//   - writes data and computes the sum
//   - resets it again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Equal reports whether a and b have the same digest. The comparison takes
// constant time, so it is suitable for checking secrets.
func (h *Hasher) Equal(a, b []byte) bool {
	return hmac.Equal(h.Sum(a), h.Sum(b))
}

// HMAC computes a one-off HMAC-SHA256 digest of data under key.
//
// Unlike Hasher it creates a new HMAC instance on every call; it is meant
// for callers whose key changes between calls.
func HMAC(data, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

