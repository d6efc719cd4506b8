// Package base64url converts raw bytes to and from the URL-safe, unpadded
// Base64 text representation that macsig uses for digests: the alphabet
// substitutes '-' and '_' for '+' and '/', and trailing '=' padding is
// omitted entirely.
package base64url

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidEncoding indicates input that is not valid unpadded, URL-safe
// Base64: it contains characters outside the alphabet (including '=' padding)
// or has a length that no unpadded encoding can produce
var ErrInvalidEncoding = errors.New("invalid base64url encoding")

// Encode returns the base64url representation of the given bytes, with no
// padding characters appended
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode reverses Encode, returning the raw bytes represented by the given
// string, or an error matching ErrInvalidEncoding if the input is malformed
func Decode(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}
