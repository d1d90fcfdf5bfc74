package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "5,000", FormatAmount(5000))
	assert.Equal(t, "1,250,000", FormatAmount(1250000))
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "5,000.50", FormatAmount(5000.5))
	assert.Equal(t, "0", FormatAmount(0))
}

func TestFormatCurrencyAmount(t *testing.T) {
	assert.Equal(t, "NGN 5,000", FormatCurrencyAmount(5000))
}

func TestPaymentDetails(t *testing.T) {
	assert.Equal(t, "NGN 5,000 payment, via Card", PaymentDetails(5000, "Payment", "Card"))
	assert.Equal(t, "NGN 2,500 refund, via Card", PaymentDetails(2500, "Refund", "Card"))
}

func TestRandomReference(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		ref := RandomReference()
		assert.Len(t, ref, 16)
		for _, r := range ref {
			ok := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z')
			assert.True(t, ok, "unexpected character %q in %s", r, ref)
		}
		seen[ref] = struct{}{}
	}
	assert.Len(t, seen, 50)
}
