package handler

import (
	"academy_manager/constants"
	"academy_manager/helper"
	"academy_manager/model"
	"academy_manager/store"
	"academy_manager/utils"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Payments is chosen at startup: the durable GORM store when the database is
// reachable, the volatile in-memory store otherwise.
var Payments store.PaymentStore

// TossClient is created in main after configuration is validated.
var TossClient *Toss

func CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreatePaymentInput)

	orderID := input.OrderID
	if orderID == "" {
		orderID = fmt.Sprintf("ORD_%s_%06d", time.Now().Format("20060102"), rand.Intn(1000000))
	}

	payment := model.Payment{
		OrderID:        orderID,
		StudentName:    input.StudentName,
		StudentPhone:   utils.NormalizePhone(input.StudentPhone),
		ParentPhone:    utils.NormalizePhone(input.ParentPhone),
		ProductType:    input.ProductType,
		Amount:         input.Amount,
		DiscountAmount: input.DiscountAmount,
		DiscountNote:   input.DiscountNote,
		Status:         constants.PAYMENT_PENDING,
	}

	if err := Payments.Create(&payment); err != nil {
		if errors.Is(err, store.ErrDuplicateOrderID) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_ORDER_ID, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !Payments.Durable() {
		log.Printf("payment %s stored in memory only (database unavailable)", payment.OrderID)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, payment)
}

func GetPayments(c *fiber.Ctx) error {
	var limit, page *int
	if l := c.QueryInt("limit"); l > 0 {
		limit = utils.Ptr(l)
	}
	if p := c.QueryInt("page"); p > 0 {
		page = utils.Ptr(p)
	}

	payments, total, err := Payments.List(limit, page)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       payments,
		Limit:      limit,
		Page:       page,
		TotalCount: total,
	})
}

// ConfirmPayment finalizes a payment the customer approved on the gateway
// checkout. The stored amount is re-checked before the gateway call so a
// tampered client cannot confirm a lower figure.
func ConfirmPayment(c *fiber.Ctx) error {
	input := c.Locals("confirmInput").(model.ConfirmPaymentInput)

	payment, err := Payments.ByOrderID(input.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Replayed confirm for an already settled payment is a no-op success.
	if payment.Status == constants.PAYMENT_PAID {
		return utils.SuccessResponse(c, fiber.StatusOK, payment)
	}
	if payment.Status == constants.PAYMENT_CANCELED {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Payment already canceled", nil)
	}

	payable := payment.Amount - payment.DiscountAmount
	if input.Amount != payable {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Amount mismatch", fmt.Errorf("expected %d, got %d", payable, input.Amount))
	}

	confirmed, err := TossClient.Confirm(input.PaymentKey, input.OrderID, input.Amount)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Payment confirmation failed", err)
	}

	markPaid(payment, confirmed)
	if err := Payments.Update(payment); err != nil {
		// The gateway took the money; surface the row we failed to write.
		log.Printf("payment %s confirmed but not persisted: %v", payment.OrderID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

// TossWebhook receives gateway status pushes. The push itself is
// unauthenticated and is treated only as a hint: the handler re-reads the
// payment from the gateway and applies the status the gateway reports, never
// the pushed one. Processing is idempotent: a payment already in the reported
// state is left untouched.
func TossWebhook(c *fiber.Ctx) error {
	var payload model.TossWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid webhook body", err)
	}
	if payload.Data.OrderID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing orderId", nil)
	}

	payment, err := Payments.ByOrderID(payload.Data.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Unknown order: acknowledge so the gateway stops retrying.
			log.Printf("webhook for unknown order %s ignored", payload.Data.OrderID)
			return c.JSON(fiber.Map{"status": "ignored"})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	verified, err := TossClient.GetByOrderID(payment.OrderID)
	if err != nil {
		// The gateway retries on non-2xx, so a failed lookup is not swallowed.
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Webhook verification failed", err)
	}

	switch verified.Status {
	case "DONE":
		payable := payment.Amount - payment.DiscountAmount
		if verified.TotalAmount != payable {
			log.Printf("webhook for order %s: gateway amount %d does not match payable %d",
				payment.OrderID, verified.TotalAmount, payable)
			return utils.ErrorResponse(c, fiber.StatusConflict, "Amount mismatch", nil)
		}
		if payment.Status != constants.PAYMENT_PAID {
			markPaid(payment, verified)
			if err := Payments.Update(payment); err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}
	case "CANCELED":
		if payment.Status != constants.PAYMENT_CANCELED {
			payment.Status = constants.PAYMENT_CANCELED
			payment.CanceledAmount = payment.Amount - payment.DiscountAmount
			if err := Payments.Update(payment); err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}
	default:
		log.Printf("webhook for order %s: gateway status %s ignored", payment.OrderID, verified.Status)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// CancelPayment is an admin action. The gateway is called first; the local row
// changes only after the gateway accepted the cancellation.
func CancelPayment(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("cancelInput").(model.CancelPaymentInput)

	payment, err := Payments.ByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if payment.Status == constants.PAYMENT_CANCELED {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Payment already canceled", nil)
	}

	payable := payment.Amount - payment.DiscountAmount
	remaining := payable - payment.CanceledAmount
	canceledAmount := remaining
	if input.Amount != nil {
		canceledAmount = *input.Amount
	}
	if canceledAmount > remaining {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cancel amount exceeds remaining balance", fmt.Errorf("remaining %d, requested %d", remaining, canceledAmount))
	}
	// Nothing is captured on a pending payment, so there is no balance to
	// refund partially.
	if payment.Status == constants.PAYMENT_PENDING && canceledAmount != remaining {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Partial cancel requires a paid payment", nil)
	}

	// A payment that never reached the gateway has no paymentKey and is only
	// canceled locally.
	if payment.PaymentKey != "" {
		if _, err := TossClient.Cancel(payment.PaymentKey, input.Reason, input.Amount); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadGateway, "Payment cancellation failed", err)
		}
	}

	payment.CanceledAmount += canceledAmount
	// A partial refund leaves the payment PAID with the refunded balance
	// accrued; the row flips to CANCELED only when nothing remains.
	if payment.CanceledAmount >= payable {
		payment.Status = constants.PAYMENT_CANCELED
	}
	payment.ManualNote = input.Reason
	if claim, err := helper.GetInfoAccountFromToken(c); err == nil {
		payment.ManualNote = fmt.Sprintf("%s (by %s)", input.Reason, claim.Username)
	}
	if err := Payments.Update(payment); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func UpdatePaymentNote(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("noteInput").(model.UpdatePaymentNoteInput)

	payment, err := Payments.ByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payment.ManualNote = input.ManualNote
	if err := Payments.Update(payment); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func markPaid(payment *model.Payment, gw *model.TossPayment) {
	payment.Status = constants.PAYMENT_PAID
	payment.PaymentKey = gw.PaymentKey
	if gw.Receipt != nil {
		payment.ReceiptURL = gw.Receipt.URL
	}
	paidAt := time.Now()
	if gw.ApprovedAt != "" {
		if t, err := time.Parse(time.RFC3339, gw.ApprovedAt); err == nil {
			paidAt = t
		}
	}
	payment.PaidAt = &paidAt
}
