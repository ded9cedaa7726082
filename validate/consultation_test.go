package validate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy_manager/model"

	"github.com/gofiber/fiber/v2"
)

func TestCreateConsultationValidation(t *testing.T) {
	app := fiber.New()
	var captured model.Consultation
	app.Post("/consultations", CreateConsultation(), func(c *fiber.Ctx) error {
		captured = c.Locals("createInput").(model.Consultation)
		return c.SendStatus(http.StatusOK)
	})

	post := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/consultations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp.StatusCode
	}

	if code := post(`{"school":"Middle School"}`); code != http.StatusBadRequest {
		t.Errorf("missing required fields: status = %d, want 400", code)
	}
	if code := post(`{"studentName":"Kim","parentName":"Lee","parentPhone":"010-9805-1011","consultDate":"not-a-date"}`); code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d, want 400", code)
	}
	if code := post(`{"studentName":"Kim","parentName":"Lee","parentPhone":"010-9805-1011","consultDate":"2026-09-01"}`); code != http.StatusOK {
		t.Errorf("valid input: status = %d, want 200", code)
	}
	if captured.ParentPhone != "01098051011" {
		t.Errorf("parent phone not normalized: %q", captured.ParentPhone)
	}
	if captured.ConsultDate.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("consult date = %v", captured.ConsultDate)
	}
}
