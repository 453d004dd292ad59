package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewNonce returns a unique request id for the checkout-nonce header.
// The PSP requires a fresh nonce per request; callers that manage their
// own request ids can pass those instead.
func NewNonce() string {
	return uuid.New().String()
}

// GenerateTraceparent generates a W3C traceparent header for outbound
// request correlation
// Format: 00-<trace-id>-<span-id>-<flags>
// trace-id: 32 hex chars (no hyphens)
// span-id: 16 hex chars (no hyphens)
// flags: 01 (sampled)
func GenerateTraceparent() string {
	traceID := strings.ReplaceAll(uuid.New().String(), "-", "")
	spanID := strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	return "00-" + traceID + "-" + spanID + "-01"
}
