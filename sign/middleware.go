package sign

import (
	"bytes"
	"errors"
	"io"
	"net/http"
)

// RequireSignature wraps an HTTP handler so that any request which does not
// carry a valid signature (as produced by a Signer sharing the same secret)
// is rejected with 401 before the inner handler ever sees it. The request
// body is buffered for verification and restored afterward, so the inner
// handler can read it as usual.
func RequireSignature(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				http.Error(res, "failed to read request body", http.StatusInternalServerError)
				return
			}
			if err := v.Verify(req, body); err != nil {
				if errors.Is(err, ErrVerificationFailed) {
					http.Error(res, "request signature is missing or invalid", http.StatusUnauthorized)
				} else {
					http.Error(res, "failed to verify request signature", http.StatusInternalServerError)
				}
				return
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(res, req)
		})
	}
}
