package helper

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators, e.g. 5000 → "5,000".
// Whole values drop the decimals; fractional ones keep two.
func FormatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return amountPrinter.Sprintf("%d", int64(amount))
	}
	return amountPrinter.Sprintf("%.2f", amount)
}

// FormatCurrencyAmount prefixes the club currency, e.g. "NGN 5,000".
func FormatCurrencyAmount(amount float64) string {
	return constants.Currency + " " + FormatAmount(amount)
}

// PaymentDetails synthesises the human readable details string,
// "NGN 5,000 payment, via Card".
func PaymentDetails(amount float64, transactionType, method string) string {
	return FormatCurrencyAmount(amount) + " " + strings.ToLower(transactionType) + ", via " + method
}

// RandomReference generates a short alphanumeric transaction token from the
// leading segments of a UUID.
func RandomReference() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
