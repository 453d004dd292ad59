// Package checkout is a client for the Checkout PSP HTTP API. It builds
// authenticated requests for payment creation, payment lookup, refund,
// and provider listing, validating outbound payloads before they are
// signed and sent.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"checkout-client/internal/credentials"
	"checkout-client/internal/models"
	"checkout-client/internal/signature"
	"checkout-client/internal/transport"
	"checkout-client/internal/utils"
	"checkout-client/internal/validation"
	"checkout-client/pkg/errors"

	"go.uber.org/zap"
)

// MetricsRecorder receives client-side metrics. A nil recorder disables
// metrics entirely.
type MetricsRecorder interface {
	RecordRequest(operation, status string)
	RecordRequestDuration(operation, status string, duration time.Duration)
	RecordSignatureGenerated()
	RecordValidationFailure(kind string)
	RecordAPIError(operation, statusCode string)
}

// Options tunes client behavior beyond credentials and transport.
type Options struct {
	// BaseURL overrides the production API endpoint.
	BaseURL string

	// RequireHTTPSURLs turns on https scheme validation for redirect and
	// callback URLs in payment payloads.
	RequireHTTPSURLs bool

	// Metrics receives request/validation metrics when non-nil.
	Metrics MetricsRecorder
}

// DefaultBaseURL is the PSP API host used when Options.BaseURL is empty.
const DefaultBaseURL = "https://api.checkout.fi"

// Client calls the Checkout PSP API. All methods are safe for concurrent
// use; each call builds a fresh header set from the caller's nonce.
type Client struct {
	creds        credentials.Context
	baseURL      string
	transport    transport.Transport
	metrics      MetricsRecorder
	validateOpts validation.Options
	logger       *zap.Logger
	now          func() time.Time
}

// NewClient creates a checkout API client.
func NewClient(creds credentials.Context, tr transport.Transport, opts Options, logger *zap.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		creds:        creds,
		baseURL:      baseURL,
		transport:    tr,
		metrics:      opts.Metrics,
		validateOpts: validation.Options{RequireHTTPSURLs: opts.RequireHTTPSURLs},
		logger:       logger,
		now:          time.Now,
	}
}

// CreatePayment validates, signs, and sends a payment-creation request.
// In test mode a nil payment is replaced with the canned sandbox payload;
// in live mode it is a MissingParameter error. The normalized copy of the
// payload is what goes on the wire; the caller's value is never mutated.
func (c *Client) CreatePayment(ctx context.Context, nonce string, payment *models.Payment) (*models.PaymentResponse, error) {
	if payment == nil {
		if !c.creds.IsTest() {
			return nil, errors.NewMissingParameter("payment")
		}
		payment = models.SandboxPayment()
	}

	normalized, err := validation.Validate(payment, c.validateOpts)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordValidationFailure(string(errors.KindOf(err)))
		}
		return nil, err
	}

	body, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encode payment: %w", err)
	}

	resp, err := c.do(ctx, OpCreatePayment, "", nonce, body)
	if err != nil {
		return nil, err
	}

	var result models.PaymentResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.NewAPIError(resp.StatusCode, string(resp.Body)).WithCause(err)
	}
	return &result, nil
}

// GetPayment fetches the details of an existing payment.
func (c *Client) GetPayment(ctx context.Context, nonce, transactionID string) (*models.PaymentDetails, error) {
	resp, err := c.do(ctx, OpGetPayment, transactionID, nonce, nil)
	if err != nil {
		return nil, err
	}

	var result models.PaymentDetails
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.NewAPIError(resp.StatusCode, string(resp.Body)).WithCause(err)
	}
	return &result, nil
}

// Refund refunds a payment in full.
func (c *Client) Refund(ctx context.Context, nonce, transactionID string) (*models.RefundResponse, error) {
	resp, err := c.do(ctx, OpRefund, transactionID, nonce, nil)
	if err != nil {
		return nil, err
	}

	var result models.RefundResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.NewAPIError(resp.StatusCode, string(resp.Body)).WithCause(err)
	}
	return &result, nil
}

// ListProviders lists the payment methods available to the merchant.
func (c *Client) ListProviders(ctx context.Context, nonce string) ([]models.Provider, error) {
	resp, err := c.do(ctx, OpListProviders, "", nonce, nil)
	if err != nil {
		return nil, err
	}

	var result []models.Provider
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.NewAPIError(resp.StatusCode, string(resp.Body)).WithCause(err)
	}
	return result, nil
}

// do builds, signs, and sends one request, then classifies the response.
// Statuses other than 200 and 201 become APIError with the raw body; no
// retry is ever attempted here.
func (c *Client) do(ctx context.Context, op Operation, transactionID, nonce string, body []byte) (*transport.Response, error) {
	if nonce == "" {
		return nil, errors.NewMissingParameter("nonce")
	}

	url, signedHeaders, err := buildRequest(op, c.baseURL, c.creds, transactionID, nonce, c.now())
	if err != nil {
		return nil, err
	}

	var bodyStr *string
	if body != nil {
		s := string(body)
		bodyStr = &s
	}

	digest, err := signature.Sign(signedHeaders, bodyStr, c.creds.SecretKey())
	if err != nil {
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.RecordSignatureGenerated()
	}

	headers := make(map[string]string, len(signedHeaders)+4)
	for key, value := range signedHeaders {
		headers[key] = value
	}
	headers["signature"] = digest
	headers["Content-Type"] = "application/json; charset=utf-8"
	headers["Accept"] = "application/json"
	headers["traceparent"] = utils.GenerateTraceparent()

	start := c.now()
	resp, err := c.transport.Send(ctx, op.method(), url, headers, body)
	duration := time.Since(start)

	if err != nil {
		c.record(op, "transport_error", duration)
		return nil, err
	}

	if resp.StatusCode != 200 && resp.StatusCode != 201 {
		c.record(op, "api_error", duration)
		if c.metrics != nil {
			c.metrics.RecordAPIError(op.String(), statusCodeLabel(resp.StatusCode))
		}
		c.logger.Warn("unexpected psp response",
			zap.String("operation", op.String()),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, errors.NewAPIError(resp.StatusCode, string(resp.Body))
	}

	c.record(op, "success", duration)
	return resp, nil
}

func (c *Client) record(op Operation, status string, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordRequest(op.String(), status)
	c.metrics.RecordRequestDuration(op.String(), status, duration)
}

func statusCodeLabel(code int) string {
	return strconv.Itoa(code)
}
