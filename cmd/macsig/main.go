/*
The macsig command computes and verifies HMAC-SHA512 message digests, encoded
as unpadded base64url strings.

Usage:

	macsig <message>          | Print the digest of <message>
	macsig <message> <digest> | Print "valid" if <digest> matches <message>, "invalid" otherwise

Verification always exits 0, whether the digest matches or not; a mismatch is
a result, not a failure. A <digest> argument that isn't well-formed base64url
is a failure: the error is printed to stderr and the process exits non-zero.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golden-vcr/macsig/mac"
)

// signingKey is compiled into the binary rather than read from configuration,
// a deliberate carry-over from the tool this replaces: it assumes the binary
// is only ever distributed to parties already trusted with the key
const signingKey = "abc123"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	engine, err := mac.NewEngine([]byte(signingKey))
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize engine: %v\n", err)
		return 1
	}

	switch len(args) {
	case 1:
		digest, err := engine.EncodedHash(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "failed to compute digest: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, digest)
	case 2:
		ok, err := engine.Validate(args[0], args[1])
		if err != nil {
			fmt.Fprintf(stderr, "failed to validate digest: %v\n", err)
			return 1
		}
		if ok {
			fmt.Fprintln(stdout, "valid")
		} else {
			fmt.Fprintln(stdout, "invalid")
		}
	default:
		fmt.Fprintln(stderr, "usage: macsig <message> [<digest>]")
		return 1
	}
	return 0
}
