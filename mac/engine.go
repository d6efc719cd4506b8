package mac

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/golden-vcr/macsig/base64url"
)

// Size is the length in bytes of a raw digest produced by Hash
const Size = sha512.Size

// ErrEmptyKey indicates that an Engine was initialized without key material
var ErrEmptyKey = errors.New("key material must not be empty")

// Engine computes and validates HMAC-SHA512 digests under a single key. An
// Engine is safe to reuse across any number of Hash and Validate calls; it
// holds a private copy of the key and no other state.
type Engine struct {
	key []byte
}

// NewEngine initializes an Engine from the given key material, failing if the
// key is empty
func NewEngine(key []byte) (*Engine, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	owned := make([]byte, len(key))
	copy(owned, key)
	return &Engine{key: owned}, nil
}

// Hash computes the raw 64-byte HMAC-SHA512 digest of the given message;
// identical (message, key) pairs always produce identical digests
func (e *Engine) Hash(message string) ([]byte, error) {
	h := hmac.New(sha512.New, e.key)
	if _, err := h.Write([]byte(message)); err != nil {
		return nil, fmt.Errorf("failed to write message to hash: %w", err)
	}
	return h.Sum(nil), nil
}

// EncodedHash computes the digest of the given message and returns it in its
// externally-visible form: an 86-character, unpadded base64url string
func (e *Engine) EncodedHash(message string) (string, error) {
	digest, err := e.Hash(message)
	if err != nil {
		return "", err
	}
	return base64url.Encode(digest), nil
}

// Validate recomputes the digest of the given message and reports whether it
// matches expectedEncodedDigest. An expected digest that is not valid
// base64url is a hard error (matching base64url.ErrInvalidEncoding) rather
// than a non-match; a well-formed digest of the wrong length or value is
// simply a non-match. The comparison of the raw digest bytes is constant-time.
func (e *Engine) Validate(message, expectedEncodedDigest string) (bool, error) {
	expected, err := base64url.Decode(expectedEncodedDigest)
	if err != nil {
		return false, fmt.Errorf("failed to decode expected digest: %w", err)
	}
	computed, err := e.Hash(message)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected, computed), nil
}
