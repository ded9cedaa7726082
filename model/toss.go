package model

type TossConfig struct {
	SecretKey string
	BaseURL   string
}

type TossPayment struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"` // DONE, CANCELED, ...
	TotalAmount int64  `json:"totalAmount"`
	Receipt     *struct {
		URL string `json:"url"`
	} `json:"receipt"`
	ApprovedAt string `json:"approvedAt"`
}

type TossError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TossWebhookPayload struct {
	EventType string      `json:"eventType"`
	Data      TossPayment `json:"data"`
}
