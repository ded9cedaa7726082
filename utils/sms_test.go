package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"010-9805-1011":   "01098051011",
		"01098051011":     "01098051011",
		"+82 10 9805 101": "82109805101",
		"(02) 123-4567":   "021234567",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessageTypeBoundary(t *testing.T) {
	short := strings.Repeat("a", 45)
	long := strings.Repeat("a", 46)

	if got := MessageType(short); got != "SMS" {
		t.Errorf("45 chars: got %q, want SMS", got)
	}
	if got := MessageType(long); got != "LMS" {
		t.Errorf("46 chars: got %q, want LMS", got)
	}
	// Multi-byte text counts characters, not bytes.
	korean := strings.Repeat("가", 45)
	if got := MessageType(korean); got != "SMS" {
		t.Errorf("45 korean chars: got %q, want SMS", got)
	}
}

func TestAuthHeader(t *testing.T) {
	client := &SMSClient{APIKey: "key123", APISecret: "secret456"}
	date := "2025-03-01T00:00:00Z"
	salt := "somesalt"

	header := client.authHeader(date, salt)

	mac := hmac.New(sha256.New, []byte("secret456"))
	mac.Write([]byte(date + salt))
	wantSig := hex.EncodeToString(mac.Sum(nil))
	want := fmt.Sprintf("HMAC-SHA256 apiKey=key123, date=%s, salt=%s, signature=%s", date, salt, wantSig)

	if header != want {
		t.Errorf("authHeader = %q, want %q", header, want)
	}
}

func TestSendBuildsNormalizedRequest(t *testing.T) {
	var got struct {
		Message smsMessage `json:"message"`
	}
	var authHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"statusCode":"2000"}`)
	}))
	defer srv.Close()

	client := &SMSClient{
		APIKey:    "key",
		APISecret: "secret",
		Sender:    "02-123-4567",
		BaseURL:   srv.URL,
		HTTP:      srv.Client(),
	}

	if err := client.Send("010-9805-1011", "hi"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if got.Message.To != "01098051011" {
		t.Errorf("recipient = %q, want 01098051011", got.Message.To)
	}
	if got.Message.From != "021234567" {
		t.Errorf("sender = %q, want 021234567", got.Message.From)
	}
	if got.Message.Type != "SMS" {
		t.Errorf("type = %q, want SMS", got.Message.Type)
	}
	if !strings.HasPrefix(authHeader, "HMAC-SHA256 apiKey=key, date=") {
		t.Errorf("unexpected auth header %q", authHeader)
	}
}

func TestSendProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"errorCode":"InternalError"}`)
	}))
	defer srv.Close()

	client := &SMSClient{
		APIKey:    "key",
		APISecret: "secret",
		Sender:    "021234567",
		BaseURL:   srv.URL,
		HTTP:      srv.Client(),
	}

	err := client.Send("01098051011", "hi")
	if err == nil {
		t.Fatal("expected error on provider 500")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "InternalError") {
		t.Errorf("error should carry status and provider payload, got %v", err)
	}
}
