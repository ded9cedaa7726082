package validate

import (
	"academy_manager/model"
	"academy_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.DiscountAmount > input.Amount {
			return utils.ErrorResponse(c, 400, "Discount cannot exceed amount", nil)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmPaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("confirmInput", input)
		return c.Next()
	}
}

func CancelPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CancelPaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("cancelInput", input)
		return c.Next()
	}
}

func UpdatePaymentNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePaymentNoteInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("noteInput", input)
		return c.Next()
	}
}
