// Package mac implements the keyed message authentication engine at the heart
// of macsig: an Engine is initialized once with secret key material, then
// reused to compute HMAC-SHA512 digests of messages and to validate messages
// against previously-computed digests. Digests cross API boundaries in their
// base64url-encoded form (see the base64url package), so that the same value
// a caller gets from EncodedHash can later be handed back to Validate.
package mac
