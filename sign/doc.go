// Package sign implements request signing and verification on top of the mac
// engine: when one backend service needs to authenticate itself against
// another, both are configured with a shared secret, and the caller uses
// sign.Signer.Sign() to attach an HMAC-SHA512 signature (along with a request
// ID and timestamp) to the outgoing request. On the receiving side,
// sign.Verifier recomputes the signature from the same secret to prove that
// the request originated from a party with access to the shared secret,
// without the secret itself ever crossing the wire. The same scheme is
// available for gRPC calls via per-RPC credentials and a matching unary
// server interceptor.
package sign
