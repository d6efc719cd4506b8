package sign

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/golden-vcr/macsig/mac"
)

type Signer interface {
	Sign(req *http.Request, body []byte) (*http.Request, error)
}

func NewSigner(engine *mac.Engine) Signer {
	return &signer{
		engine: engine,
	}
}

type signer struct {
	engine *mac.Engine
}

func (s *signer) Sign(req *http.Request, body []byte) (*http.Request, error) {
	requestId := req.Header.Get(HeaderRequestId)
	if requestId == "" {
		requestId = uuid.NewString()
		req.Header.Set(HeaderRequestId, requestId)
	}

	timestamp := req.Header.Get(HeaderRequestTimestamp)
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
		req.Header.Set(HeaderRequestTimestamp, timestamp)
	}

	encoded, err := s.engine.EncodedHash(requestId + timestamp + string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to compute request digest: %w", err)
	}
	req.Header.Set(HeaderSignature, SignaturePrefix+encoded)
	return req, nil
}

var _ Signer = (*signer)(nil)
