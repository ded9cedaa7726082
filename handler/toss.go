package handler

import (
	"academy_manager/config"
	"academy_manager/model"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Toss payment gateway client
type Toss struct {
	Config model.TossConfig
	HTTP   *http.Client
}

func NewToss() *Toss {
	return &Toss{
		Config: model.TossConfig{
			SecretKey: config.MustConfig("TOSS_SECRET_KEY"),
			BaseURL:   config.ConfigOr("TOSS_BASE_URL", "https://api.tosspayments.com"),
		},
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthHeader encodes the secret key with an empty password half, as the
// gateway requires.
func (t *Toss) AuthHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(t.Config.SecretKey+":"))
}

// Confirm finalizes an approved payment.
func (t *Toss) Confirm(paymentKey, orderID string, amount int64) (*model.TossPayment, error) {
	return t.post("/v1/payments/confirm", map[string]any{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	})
}

// Cancel voids a payment, fully or partially. A nil amount cancels the
// remaining balance.
func (t *Toss) Cancel(paymentKey, reason string, amount *int64) (*model.TossPayment, error) {
	payload := map[string]any{"cancelReason": reason}
	if amount != nil {
		payload["cancelAmount"] = *amount
	}
	return t.post("/v1/payments/"+paymentKey+"/cancel", payload)
}

// GetByOrderID reads the gateway's own record for an order. Webhook pushes
// carry no signature, so this is what the webhook handler trusts instead of
// the pushed payload.
func (t *Toss) GetByOrderID(orderID string) (*model.TossPayment, error) {
	req, err := http.NewRequest(http.MethodGet, t.Config.BaseURL+"/v1/payments/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	return t.do(req)
}

func (t *Toss) post(path string, payload any) (*model.TossPayment, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, t.Config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return t.do(req)
}

func (t *Toss) do(req *http.Request) (*model.TossPayment, error) {
	req.Header.Set("Authorization", t.AuthHeader())

	resp, err := t.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var tossErr model.TossError
		if err := json.NewDecoder(resp.Body).Decode(&tossErr); err != nil {
			return nil, fmt.Errorf("payment gateway returned %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("payment gateway error %s: %s", tossErr.Code, tossErr.Message)
	}

	var payment model.TossPayment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
