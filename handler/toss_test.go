package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"academy_manager/model"
)

func newTestToss(baseURL string) *Toss {
	return &Toss{
		Config: model.TossConfig{SecretKey: "test_sk_abc", BaseURL: baseURL},
		HTTP:   &http.Client{Timeout: time.Second},
	}
}

func TestTossAuthHeader(t *testing.T) {
	toss := newTestToss("")

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("test_sk_abc:"))
	if got := toss.AuthHeader(); got != want {
		t.Errorf("AuthHeader = %q, want %q", got, want)
	}
}

func TestTossConfirm(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(model.TossPayment{
			PaymentKey:  "pk_1",
			OrderID:     "ORD_1",
			Status:      "DONE",
			TotalAmount: 300000,
		})
	}))
	defer srv.Close()

	toss := newTestToss(srv.URL)
	payment, err := toss.Confirm("pk_1", "ORD_1", 300000)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if gotPath != "/v1/payments/confirm" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.HasPrefix(gotAuth, "Basic ") {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody["orderId"] != "ORD_1" || gotBody["amount"] != float64(300000) {
		t.Errorf("unexpected body %v", gotBody)
	}
	if payment.Status != "DONE" {
		t.Errorf("status = %q", payment.Status)
	}
}

func TestTossErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.TossError{Code: "NOT_FOUND_PAYMENT", Message: "unknown payment"})
	}))
	defer srv.Close()

	toss := newTestToss(srv.URL)
	_, err := toss.Cancel("pk_missing", "test", nil)
	if err == nil {
		t.Fatal("expected error on gateway 400")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND_PAYMENT") {
		t.Errorf("error should carry gateway code, got %v", err)
	}
}
