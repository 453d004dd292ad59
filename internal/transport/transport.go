// Package transport carries signed requests to the PSP. The core client
// only depends on the Transport interface; retry, TLS, and timeout policy
// live here, not in the client.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"checkout-client/pkg/errors"

	"go.uber.org/zap"
)

// Response is the status code and raw body of one PSP round trip.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends one prepared request and returns the raw response.
type Transport interface {
	Send(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error)
}

// HTTPTransport is the default Transport over net/http.
type HTTPTransport struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPTransport creates a transport with the given request timeout.
func NewHTTPTransport(timeout time.Duration, logger *zap.Logger) *HTTPTransport {
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Send performs the HTTP round trip. The response is returned for any
// status code; classifying non-2xx statuses is the caller's concern.
func (t *HTTPTransport) Send(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	t.logger.Debug("psp round trip",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
