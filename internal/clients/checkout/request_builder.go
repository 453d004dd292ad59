package checkout

import (
	"time"

	"checkout-client/internal/credentials"
	"checkout-client/pkg/errors"
)

// timestampLayout is RFC 3339 with millisecond precision and an explicit
// UTC offset, e.g. 2018-07-06T10:01:31.904Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// buildRequest maps an operation to its URL and the exact header set the
// signature is computed over. The returned map holds only signed headers;
// signature, Content-Type, Accept, and traceparent are merged in later.
func buildRequest(op Operation, baseURL string, creds credentials.Context, transactionID, nonce string, timestamp time.Time) (string, map[string]string, error) {
	if op.requiresTransactionID() && transactionID == "" {
		return "", nil, errors.NewMissingParameter("transactionId")
	}

	headers := map[string]string{
		"checkout-account":   creds.MerchantID(),
		"checkout-algorithm": creds.Algorithm(),
		"checkout-method":    op.method(),
		"checkout-nonce":     nonce,
		"checkout-timestamp": timestamp.UTC().Format(timestampLayout),
	}
	if op.requiresTransactionID() {
		headers["checkout-transaction-id"] = transactionID
	}

	return baseURL + op.path(transactionID), headers, nil
}
