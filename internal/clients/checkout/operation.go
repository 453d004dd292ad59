package checkout

import "net/http"

// Operation is a closed enumeration of the PSP API calls the client can
// make. Adding an operation means extending every switch below, so an
// unhandled case is a compile-time problem rather than a silent nil URL.
type Operation int

const (
	OpCreatePayment Operation = iota
	OpGetPayment
	OpRefund
	OpListProviders
)

func (op Operation) String() string {
	switch op {
	case OpCreatePayment:
		return "create_payment"
	case OpGetPayment:
		return "get_payment"
	case OpRefund:
		return "refund"
	case OpListProviders:
		return "list_providers"
	default:
		return "unknown"
	}
}

func (op Operation) method() string {
	switch op {
	case OpGetPayment, OpListProviders:
		return http.MethodGet
	default:
		return http.MethodPost
	}
}

// requiresTransactionID reports whether the operation addresses one
// existing payment.
func (op Operation) requiresTransactionID() bool {
	return op == OpGetPayment || op == OpRefund
}

func (op Operation) path(transactionID string) string {
	switch op {
	case OpCreatePayment:
		return "/payments"
	case OpGetPayment:
		return "/payments/" + transactionID
	case OpRefund:
		return "/payments/" + transactionID + "/refund"
	case OpListProviders:
		return "/merchants/payment-providers"
	default:
		return ""
	}
}
