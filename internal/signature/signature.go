// Package signature implements the PSP request-authentication signature:
// a canonical serialization of the checkout-* header set (plus optional
// body) signed with HMAC-SHA256.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"checkout-client/pkg/errors"
)

// CanonicalMessage builds the exact byte string the PSP signs and
// verifies. Header keys are sorted byte-wise ascending and emitted as
// "key:value" lines joined with "\n". A present body becomes the final
// line with no trailing newline; with no body the message ends with a
// single trailing "\n" after the last header line. Receivers recompute
// this message verbatim, so the layout is part of the wire contract.
func CanonicalMessage(headers map[string]string, body *string) (string, error) {
	if len(headers) == 0 && body == nil {
		return "", errors.NewEmptyInput()
	}

	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		lines = append(lines, key+":"+headers[key])
	}

	if body != nil {
		lines = append(lines, *body)
		return strings.Join(lines, "\n"), nil
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// Sign computes the lowercase hex HMAC-SHA256 digest of the canonical
// message, keyed by secret. Pure function: no I/O, no randomness.
func Sign(headers map[string]string, body *string, secret string) (string, error) {
	message, err := CanonicalMessage(headers, body)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the signature for the given input and compares it to
// the presented one in constant time. Used to check signatures on
// redirect and callback parameters from the PSP.
func Verify(headers map[string]string, body *string, secret, presented string) bool {
	expected, err := Sign(headers, body, secret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(presented))
}
