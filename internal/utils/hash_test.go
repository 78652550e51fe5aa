// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"sync"
	"testing"
)

func TestHasherSum(t *testing.T) {
	key := []byte("secret-key")
	hasher := NewHasher(key)

	data := []byte("test-data")
	sum1 := hasher.Sum(data)
	sum2 := hasher.Sum(data)

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, key)
	h.Write(data)
	if !bytes.Equal(sum1, h.Sum(nil)) {
		t.Fatal("Sum result does not match direct HMAC computation")
	}
}

func TestHasherKeyIsCopied(t *testing.T) {
	key := []byte("secret-key")
	hasher := NewHasher(key)
	before := hasher.Sum([]byte("x"))

	key[0] = 'X'
	if !bytes.Equal(before, hasher.Sum([]byte("x"))) {
		t.Fatal("changing the caller's key must not affect the hasher")
	}
}

func TestHasherConcurrent(t *testing.T) {
	hasher := NewHasher([]byte("k"))
	want := HMAC([]byte("payload"), []byte("k"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bytes.Equal(hasher.Sum([]byte("payload")), want) {
				t.Error("concurrent Sum returned an unexpected digest")
			}
		}()
	}
	wg.Wait()
}

func TestHasherEqual(t *testing.T) {
	hasher := NewHasher([]byte("k"))

	if !hasher.Equal([]byte("api-key"), []byte("api-key")) {
		t.Error("expected equal values to compare equal")
	}
	if hasher.Equal([]byte("api-key"), []byte("api-kez")) {
		t.Error("expected different values to compare unequal")
	}
}

func TestHMACDependsOnKey(t *testing.T) {
	data := []byte("data")
	if bytes.Equal(HMAC(data, []byte("a")), HMAC(data, []byte("b"))) {
		t.Fatal("different keys must produce different digests")
	}
	if len(HMAC(data, []byte("a"))) != sha256.Size {
		t.Fatalf("expected %d-byte digest", sha256.Size)
	}
}

