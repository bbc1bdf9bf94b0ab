package payment

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"freehunt_backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func testProvider() *Provider {
	return NewProvider(config.PaymentConfig{
		MerchantID: "merchant-1",
		Secret:     "s3cret",
		BaseURL:    "https://pay.example.com/api/",
		Currency:   "EUR",
	})
}

func TestSignDeterministic(t *testing.T) {
	p := testProvider()

	plain := fmt.Sprintf("merchant-1:%s:order-42:s3cret", "49.90")
	sum := md5.Sum([]byte(plain))
	expected := hex.EncodeToString(sum[:])

	assert.Equal(t, len(expected), len(p.sign("order-42", 49.90)))
	assert.True(t, strings.EqualFold(expected, p.sign("order-42", 49.90)))
	assert.Equal(t, p.sign("order-42", 49.90), p.sign("order-42", 49.90))
	assert.NotEqual(t, p.sign("order-42", 49.90), p.sign("order-42", 99.80))
}

func TestVerifySignature(t *testing.T) {
	p := testProvider()

	plain := fmt.Sprintf("%s:order-42:s3cret", "49.90")
	sum := md5.Sum([]byte(plain))
	sig := hex.EncodeToString(sum[:])

	assert.True(t, p.VerifySignature("order-42", 49.90, sig))
	assert.False(t, p.VerifySignature("order-42", 50.00, sig))
	assert.False(t, p.VerifySignature("order-43", 49.90, sig))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "49.90", formatAmount(49.9))
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "100.00", formatAmount(100))
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	p := testProvider()
	assert.Equal(t, "https://pay.example.com/api", p.baseURL)
}
