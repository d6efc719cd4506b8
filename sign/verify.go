package sign

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golden-vcr/macsig/base64url"
	"github.com/golden-vcr/macsig/mac"
)

var ErrVerificationFailed = errors.New("verification failed")

type Verifier interface {
	Verify(req *http.Request, body []byte) error
}

func NewVerifier(engine *mac.Engine) Verifier {
	return &verifier{
		engine: engine,
	}
}

type verifier struct {
	engine *mac.Engine
}

func (v *verifier) Verify(req *http.Request, body []byte) error {
	requestId := req.Header.Get(HeaderRequestId)
	if requestId == "" {
		return ErrVerificationFailed
	}

	timestamp := req.Header.Get(HeaderRequestTimestamp)
	if timestamp == "" {
		return ErrVerificationFailed
	}

	signatureHeader := req.Header.Get(HeaderSignature)
	if signatureHeader == "" || !strings.HasPrefix(signatureHeader, SignaturePrefix) {
		return ErrVerificationFailed
	}

	// A signature that isn't valid base64url can't possibly have been
	// produced by a Signer holding the shared secret: at this boundary that's
	// an authentication failure, not a decode error for the caller to handle
	expected, err := base64url.Decode(strings.TrimPrefix(signatureHeader, SignaturePrefix))
	if err != nil {
		return ErrVerificationFailed
	}

	computed, err := v.engine.Hash(requestId + timestamp + string(body))
	if err != nil {
		return fmt.Errorf("failed to compute request digest: %w", err)
	}

	if !hmac.Equal(expected, computed) {
		return ErrVerificationFailed
	}
	return nil
}

var _ Verifier = (*verifier)(nil)
