package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/golden-vcr/macsig/base64url"
	"github.com/golden-vcr/macsig/entry"
	"github.com/golden-vcr/macsig/mac"
)

type server struct {
	engine *mac.Engine
}

// ValidateRequest is the payload accepted by POST /validate
type ValidateRequest struct {
	Message string `json:"message"`
	Digest  string `json:"digest"`
}

// ValidateResponse is the payload returned by POST /validate
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

func (s *server) handleGetStatus(res http.ResponseWriter, req *http.Request) {
	res.Write([]byte("OK"))
}

// handlePostHash treats the entire request body as the message, responding
// with its base64url-encoded HMAC-SHA512 digest as text/plain
func (s *server) handlePostHash(res http.ResponseWriter, req *http.Request) {
	message, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(res, "failed to read request body", http.StatusInternalServerError)
		return
	}

	digest, err := s.engine.EncodedHash(string(message))
	if err != nil {
		entry.Log(req).Error("Failed to compute digest", "error", err)
		http.Error(res, "failed to compute digest", http.StatusInternalServerError)
		return
	}

	res.Header().Set("content-type", "text/plain")
	res.Write([]byte(digest))
}

// handlePostValidate recomputes the digest of the supplied message and
// reports whether it matches the supplied digest. A digest that isn't
// well-formed base64url is a 400, matching the hard-error policy of the
// macsig CLI.
func (s *server) handlePostValidate(res http.ResponseWriter, req *http.Request) {
	var payload ValidateRequest
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		http.Error(res, "invalid request payload", http.StatusBadRequest)
		return
	}

	valid, err := s.engine.Validate(payload.Message, payload.Digest)
	if err != nil {
		if errors.Is(err, base64url.ErrInvalidEncoding) {
			http.Error(res, "digest is not valid base64url", http.StatusBadRequest)
			return
		}
		entry.Log(req).Error("Failed to validate digest", "error", err)
		http.Error(res, "failed to validate digest", http.StatusInternalServerError)
		return
	}

	res.Header().Set("content-type", "application/json")
	json.NewEncoder(res).Encode(ValidateResponse{Valid: valid})
}
