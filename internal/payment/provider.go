package payment

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freehunt_backend/internal/config"
	"freehunt_backend/pkg/apperrors"
)

// Provider talks to the merchant payment API. Requests are form-encoded and
// signed with an MD5 digest over the merchant id, amount, order id and the
// shared secret.
type Provider struct {
	merchantID string
	secret     string
	baseURL    string
	currency   string
	client     *http.Client
}

func NewProvider(cfg config.PaymentConfig) *Provider {
	return &Provider{
		merchantID: cfg.MerchantID,
		secret:     cfg.Secret,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		currency:   cfg.Currency,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type gatewayResponse struct {
	Success  bool    `json:"success"`
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	ErrorMsg string  `json:"error"`
}

func (p *Provider) Charge(ctx context.Context, orderID string, amount float64, description string) (*ChargeResult, error) {
	params := url.Values{}
	params.Set("MerchantId", p.merchantID)
	params.Set("OrderId", orderID)
	params.Set("Amount", formatAmount(amount))
	params.Set("Currency", p.currency)
	params.Set("Description", description)
	params.Set("Signature", p.sign(orderID, amount))

	resp, err := p.post(ctx, "/charges", params)
	if err != nil {
		return nil, err
	}
	return &ChargeResult{
		Success:  resp.Success,
		ChargeID: resp.ID,
		Message:  firstNonEmpty(resp.Message, resp.ErrorMsg),
	}, nil
}

func (p *Provider) Refund(ctx context.Context, chargeID string, amount float64) (*RefundResult, error) {
	params := url.Values{}
	params.Set("MerchantId", p.merchantID)
	params.Set("ChargeId", chargeID)
	params.Set("Amount", formatAmount(amount))
	params.Set("Signature", p.sign(chargeID, amount))

	resp, err := p.post(ctx, "/refunds", params)
	if err != nil {
		return nil, err
	}
	return &RefundResult{
		Success:  resp.Success,
		RefundID: resp.ID,
		Amount:   resp.Amount,
		Status:   resp.Status,
		Message:  firstNonEmpty(resp.Message, resp.ErrorMsg),
	}, nil
}

func (p *Provider) post(ctx context.Context, path string, params url.Values) (*gatewayResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payment", "Payment provider request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := p.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payment", "Payment provider is unreachable")
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusInternalServerError {
		return nil, apperrors.ErrExternalService(
			fmt.Errorf("gateway returned %d", httpResp.StatusCode),
			"payment", "Payment provider error")
	}

	var resp gatewayResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, apperrors.ErrExternalService(err, "payment", "Payment provider returned an invalid response")
	}
	return &resp, nil
}

// sign builds the MD5 request signature over the merchant id, the formatted
// amount, the order or charge id and the shared secret.
func (p *Provider) sign(reference string, amount float64) string {
	plain := fmt.Sprintf("%s:%s:%s:%s", p.merchantID, formatAmount(amount), reference, p.secret)
	hash := md5.Sum([]byte(plain))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// VerifySignature checks a callback signature computed over the amount, the
// reference and the shared secret.
func (p *Provider) VerifySignature(reference string, amount float64, receivedSig string) bool {
	plain := fmt.Sprintf("%s:%s:%s", formatAmount(amount), reference, p.secret)
	hash := md5.Sum([]byte(plain))
	return strings.EqualFold(hex.EncodeToString(hash[:]), receivedSig)
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
