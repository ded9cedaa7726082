package validate

import (
	"academy_manager/model"
	"academy_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateConsultation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateConsultationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		var consultDate time.Time
		if input.ConsultDate != "" {
			d, err := time.Parse("2006-01-02", input.ConsultDate)
			if err != nil {
				return utils.ErrorResponse(c, 400, "consultDate must be YYYY-MM-DD", err)
			}
			consultDate = d
		}

		c.Locals("createInput", model.Consultation{
			StudentName: input.StudentName,
			School:      input.School,
			Grade:       input.Grade,
			ParentName:  input.ParentName,
			ParentPhone: utils.NormalizePhone(input.ParentPhone),
			ConsultDate: consultDate,
		})
		return c.Next()
	}
}

func UpdateConsultationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateConsultationStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}
