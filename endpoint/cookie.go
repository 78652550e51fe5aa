// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-finchers/internal/utils"
	"golang.org/x/crypto/chacha20poly1305"
)

// CookieJar holds the cookies sent with the request and records every
// change made while handling it. The changes are emitted as Set-Cookie
// headers by the service.
type CookieJar struct {
	mu       sync.Mutex
	original map[string]*http.Cookie
	delta    []*http.Cookie
}

func newCookieJar(r *http.Request) *CookieJar {
	jar := &CookieJar{original: make(map[string]*http.Cookie)}
	for _, c := range r.Cookies() {
		if _, exists := jar.original[c.Name]; !exists {
			jar.original[c.Name] = c
		}
	}
	return jar
}

// Get returns the current cookie named name, taking earlier changes into
// account.
func (j *CookieJar) Get(name string) (*http.Cookie, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := len(j.delta) - 1; i >= 0; i-- {
		if c := j.delta[i]; c.Name == name {
			if c.MaxAge < 0 {
				return nil, false
			}
			return c, true
		}
	}
	c, ok := j.original[name]
	return c, ok
}

// Add stores c and schedules it to be sent to the client.
func (j *CookieJar) Add(c *http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.replace(c)
}

// Remove asks the client to drop the cookie named name.
func (j *CookieJar) Remove(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.replace(&http.Cookie{
		Name:    name,
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}

func (j *CookieJar) replace(c *http.Cookie) {
	for i, existing := range j.delta {
		if existing.Name == c.Name {
			j.delta[i] = c
			return
		}
	}
	j.delta = append(j.delta, c)
}

// Delta returns the cookies added or removed so far.
func (j *CookieJar) Delta() []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]*http.Cookie, len(j.delta))
	copy(out, j.delta)
	return out
}

// Signed returns a view of the jar whose values are authenticated with
// HMAC-SHA256 under key. Tampered values read as absent.
func (j *CookieJar) Signed(key []byte) *SignedJar {
	return &SignedJar{jar: j, key: key}
}

// Private returns a view of the jar whose values are encrypted and
// authenticated with XChaCha20-Poly1305. key must be 32 bytes long.
func (j *CookieJar) Private(key []byte) (*PrivateJar, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidCookieKey, chacha20poly1305.KeySize, len(key))
	}
	return &PrivateJar{jar: j, key: key}, nil
}

var cookieEncoding = base64.RawURLEncoding

// SignedJar stores cookie values in clear text next to their signature.
type SignedJar struct {
	jar *CookieJar
	key []byte
}

func (s *SignedJar) mac(name, value string) []byte {
	return utils.HMAC([]byte(name+"="+value), s.key)
}

// Add signs c.Value and stores the cookie.
func (s *SignedJar) Add(c *http.Cookie) {
	signed := *c
	signed.Value = cookieEncoding.EncodeToString(s.mac(c.Name, c.Value)) + "." + cookieEncoding.EncodeToString([]byte(c.Value))
	s.jar.Add(&signed)
}

// Get returns the verified cookie named name with its original value.
func (s *SignedJar) Get(name string) (*http.Cookie, bool) {
	c, ok := s.jar.Get(name)
	if !ok {
		return nil, false
	}

	sig, payload, found := strings.Cut(c.Value, ".")
	if !found {
		return nil, false
	}
	mac, err := cookieEncoding.DecodeString(sig)
	if err != nil {
		return nil, false
	}
	value, err := cookieEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	if !hmac.Equal(mac, s.mac(name, string(value))) {
		return nil, false
	}

	verified := *c
	verified.Value = string(value)
	return &verified, true
}

// PrivateJar stores cookie values encrypted.
type PrivateJar struct {
	jar *CookieJar
	key []byte
}

// Add encrypts c.Value and stores the cookie.
func (p *PrivateJar) Add(c *http.Cookie) error {
	aead, err := chacha20poly1305.NewX(p.key)
	if err != nil {
		return fmt.Errorf("error creating cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(c.Value)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("error generating nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(c.Value), []byte(c.Name))

	encrypted := *c
	encrypted.Value = cookieEncoding.EncodeToString(sealed)
	p.jar.Add(&encrypted)
	return nil
}

// Get returns the decrypted cookie named name.
func (p *PrivateJar) Get(name string) (*http.Cookie, bool) {
	c, ok := p.jar.Get(name)
	if !ok {
		return nil, false
	}

	aead, err := chacha20poly1305.NewX(p.key)
	if err != nil {
		return nil, false
	}
	sealed, err := cookieEncoding.DecodeString(c.Value)
	if err != nil || len(sealed) < aead.NonceSize() {
		return nil, false
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		return nil, false
	}

	decrypted := *c
	decrypted.Value = string(plain)
	return &decrypted, true
}
