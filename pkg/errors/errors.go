package errors

import (
	"fmt"
)

// Kind identifies a class of client failure for programmatic handling.
type Kind string

const (
	KindMissingCredential   Kind = "missing_credential"
	KindMissingParameter    Kind = "missing_parameter"
	KindMissingMandatoryKey Kind = "missing_mandatory_key"
	KindUnsupportedCurrency Kind = "unsupported_currency"
	KindInvalidLanguageCode Kind = "invalid_language_code"
	KindInvalidCountryCode  Kind = "invalid_country_code"
	KindInvalidNumericType  Kind = "invalid_numeric_type"
	KindInvalidURLScheme    Kind = "invalid_url_scheme"
	KindEmptyInput          Kind = "empty_input"
	KindAPIError            Kind = "api_error"
	KindTransport           Kind = "transport"
)

type DomainError struct {
	Kind    Kind
	Field   string
	Message string
	Details string
	Status  int    // set for KindAPIError only
	Body    string // set for KindAPIError only
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

func NewMissingCredential(field string) *DomainError {
	return &DomainError{
		Kind:    KindMissingCredential,
		Field:   field,
		Message: "missing credential",
		Details: fmt.Sprintf("%s is required in live mode", field),
	}
}

func NewMissingParameter(field string) *DomainError {
	return &DomainError{
		Kind:    KindMissingParameter,
		Field:   field,
		Message: "missing parameter",
		Details: fmt.Sprintf("%s parameter is required", field),
	}
}

func NewMissingMandatoryKey(field string) *DomainError {
	return &DomainError{
		Kind:    KindMissingMandatoryKey,
		Field:   field,
		Message: "missing mandatory key",
		Details: field,
	}
}

func NewUnsupportedCurrency(got string) *DomainError {
	return &DomainError{
		Kind:    KindUnsupportedCurrency,
		Field:   "currency",
		Message: "unsupported currency",
		Details: fmt.Sprintf("got %q, only EUR is supported", got),
	}
}

func NewInvalidLanguageCode(got string) *DomainError {
	return &DomainError{
		Kind:    KindInvalidLanguageCode,
		Field:   "language",
		Message: "invalid language code",
		Details: fmt.Sprintf("got %q, expected one of FI, SV, EN", got),
	}
}

func NewInvalidCountryCode(got string) *DomainError {
	return &DomainError{
		Kind:    KindInvalidCountryCode,
		Field:   "country",
		Message: "invalid country code",
		Details: fmt.Sprintf("got %q, expected a 2-letter country code", got),
	}
}

func NewInvalidNumericType(field string) *DomainError {
	return &DomainError{
		Kind:    KindInvalidNumericType,
		Field:   field,
		Message: "invalid numeric value",
		Details: fmt.Sprintf("%s must be a non-negative integer in minor units", field),
	}
}

func NewInvalidURLScheme(field string) *DomainError {
	return &DomainError{
		Kind:    KindInvalidURLScheme,
		Field:   field,
		Message: "invalid url scheme",
		Details: fmt.Sprintf("%s must use https://", field),
	}
}

func NewEmptyInput() *DomainError {
	return &DomainError{
		Kind:    KindEmptyInput,
		Message: "empty signing input",
		Details: "expected a non-empty header set or a body",
	}
}

func NewAPIError(status int, body string) *DomainError {
	return &DomainError{
		Kind:    KindAPIError,
		Message: "unexpected api response",
		Details: fmt.Sprintf("status %d", status),
		Status:  status,
		Body:    body,
	}
}

func NewTransportError(cause error) *DomainError {
	return &DomainError{
		Kind:    KindTransport,
		Message: "transport send failed",
		Cause:   cause,
	}
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// KindOf returns the Kind of a DomainError, or the empty Kind for any
// other error value.
func KindOf(err error) Kind {
	domainErr, ok := err.(*DomainError)
	if !ok {
		return ""
	}
	return domainErr.Kind
}
