package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// SignatureHeader carries the payload HMAC-SHA256 digest,
// hex-encoded and prefixed with the "sha256=" scheme.
const SignatureHeader = "X-Hub-Signature-256"

// signatureScheme prefix of the SignatureHeader value.
const signatureScheme = "sha256="

// ErrSecretMissing indicates the app secret is not configured.
// This is a caller setup defect, not a verification failure.
var ErrSecretMissing = errors.New("webhook: app secret is missing")

// VerifySignature reports whether signature is a valid
// HMAC-SHA256 digest of body keyed with secret.
//
// An absent or malformed signature reports false; callers cannot
// distinguish a tampered body from a wrong secret value by the result.
// The only error condition is an empty secret: ErrSecretMissing.
// https://developers.facebook.com/docs/graph-api/webhooks/getting-started#validating-payloads
func VerifySignature(signature string, body []byte, secret string) (bool, error) {
	if secret == "" {
		return false, ErrSecretMissing
	}
	if signature == "" {
		return false, nil
	}
	// Strip the scheme prefix, if present.
	signature = strings.TrimPrefix(signature, signatureScheme)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body) // never returns an error
	want := hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal requires equal-length inputs to stay constant-time;
	// the length itself is not secret.
	if len(signature) != len(want) {
		return false, nil
	}
	return hmac.Equal([]byte(signature), []byte(want)), nil
}
