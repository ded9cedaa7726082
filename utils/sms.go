package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"time"

	"academy_manager/config"

	"github.com/google/uuid"
)

// Messages longer than this switch to the long-form transport type. This is a
// framing constraint of the provider, not a business rule.
const shortMessageLimit = 45

var nonDigit = regexp.MustCompile(`\D`)

// SMSClient sends a single text message through the Solapi HTTP API. It never
// retries; a failed send is logged and returned to the caller as an error.
type SMSClient struct {
	APIKey    string
	APISecret string
	Sender    string
	BaseURL   string
	HTTP      *http.Client
}

// DefaultSMS is set in main after configuration is validated.
var DefaultSMS *SMSClient

func NewSMSClient() *SMSClient {
	return &SMSClient{
		APIKey:    config.MustConfig("SOLAPI_API_KEY"),
		APISecret: config.MustConfig("SOLAPI_API_SECRET"),
		Sender:    config.MustConfig("SOLAPI_SENDER_PHONE"),
		BaseURL:   config.ConfigOr("SOLAPI_BASE_URL", "https://api.solapi.com"),
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

// NormalizePhone strips every non-digit character, e.g. "010-9805-1011"
// becomes "01098051011".
func NormalizePhone(phone string) string {
	return nonDigit.ReplaceAllString(phone, "")
}

// MessageType selects the provider message type by character count.
func MessageType(text string) string {
	if len([]rune(text)) > shortMessageLimit {
		return "LMS"
	}
	return "SMS"
}

// authHeader builds the per-request signature header. The signature base
// string is date+salt keyed with the API secret; the provider rejects stale
// dates, which is what makes the pair replay-resistant.
func (s *SMSClient) authHeader(date, salt string) string {
	mac := hmac.New(sha256.New, []byte(s.APISecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s",
		s.APIKey, date, salt, signature)
}

type smsMessage struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Text    string `json:"text"`
	Type    string `json:"type"`
	Subject string `json:"subject,omitempty"`
}

// Send delivers one message. Transport and provider-side failures come back as
// an error value; the caller decides whether the end user needs to know.
func (s *SMSClient) Send(to, text string) error {
	msg := smsMessage{
		To:   NormalizePhone(to),
		From: NormalizePhone(s.Sender),
		Text: text,
		Type: MessageType(text),
	}

	body, err := json.Marshal(map[string]any{"message": msg})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.BaseURL+"/messages/v4/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	date := time.Now().UTC().Format(time.RFC3339)
	salt := uuid.NewString()
	req.Header.Set("Authorization", s.authHeader(date, salt))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		log.Printf("sms send failed (to=%s): %v", msg.To, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, string(payload))
		log.Printf("sms send failed (to=%s): %v", msg.To, err)
		return err
	}
	return nil
}

// SendSMS sends through the default client. Notification failure is not fatal
// for callers; they log and move on.
func SendSMS(to, text string) error {
	if DefaultSMS == nil {
		return errors.New("sms client not configured")
	}
	return DefaultSMS.Send(to, text)
}
