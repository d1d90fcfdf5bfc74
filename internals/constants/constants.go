package constants

import "strings"

// ==========================
// Record status flags
// ==========================
const (
	DefaultStatus       = 1 // active
	DefaultDeleteStatus = 0 // soft-deleted
)

// ==========================
// Payment lifecycle
// ==========================
const (
	Processing = "processing"
	Completed  = "completed"
	Cancelled  = "cancelled"
	Refunded   = "refunded"
)

// ==========================
// Application lifecycle
// ==========================
const (
	ApplicationPending = "pending"
	ApplicationPaid    = "paid"
)

// ==========================
// Gateways (stored uppercased)
// ==========================
const (
	GatewayPaystack = "PAYSTACK"
	GatewaySquad    = "SQUAD"
	GatewayInternal = "INTERNAL"
)

// ==========================
// Transaction types & methods
// ==========================
const (
	TransactionTypePayment = "Payment"
	TransactionTypeRefund  = "Refund"

	PaymentMethodCard = "Card"

	Currency = "NGN"
)

// ==========================
// App default criteria
// ==========================
const (
	PaystackSecretKeyCriteria = "paystack_secret_key"
	SquadSecretKeyCriteria    = "squad_secret_key"
)

// ==========================
// Gateway verify endpoints
// ==========================
const (
	PaystackVerifyPaymentURL     = "https://api.paystack.co/transaction/verify/"
	SquadSandboxVerifyPaymentURL = "https://sandbox-api-d.squadco.com/transaction/verify/"
	SquadLiveVerifyPaymentURL    = "https://api-d.squadco.com/transaction/verify/"
)

// API key header for gated routes.
const HeaderKey = "alphaprimeclub-header-key"

// IsValidGateway reports whether g (any case) is a known gateway.
func IsValidGateway(g string) bool {
	switch strings.ToUpper(strings.TrimSpace(g)) {
	case GatewayPaystack, GatewaySquad, GatewayInternal:
		return true
	default:
		return false
	}
}

// NormalizeGateway uppercases a gateway value the way it is stored.
func NormalizeGateway(g string) string {
	return strings.ToUpper(strings.TrimSpace(g))
}
