package sign

const (
	// HeaderRequestId is the name of the header that carries a unique ID
	// generated for a signed request
	HeaderRequestId = "x-macsig-request-id"

	// HeaderRequestTimestamp is the name of the header that carries an
	// RFC3339 timestamp indicating when the request was made
	HeaderRequestTimestamp = "x-macsig-request-timestamp"

	// HeaderSignature is the name of the header that carries the signature
	// computed from the concatenation of the request ID, timestamp string,
	// and request payload body
	HeaderSignature = "x-macsig-signature"
)

// SignaturePrefix identifies the algorithm and encoding of the signature
// value that follows it: an unpadded base64url HMAC-SHA512 digest
const SignaturePrefix = "hmac-sha512="
