package validate

import (
	"academy_manager/model"
	"academy_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateFranchise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFranchiseInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		hasProperty := false
		if input.HasProperty != nil {
			hasProperty = *input.HasProperty
		}

		c.Locals("createInput", model.FranchiseInquiry{
			Name:        input.Name,
			Phone:       utils.NormalizePhone(input.Phone),
			Email:       input.Email,
			Region:      input.Region,
			Budget:      input.Budget,
			HasProperty: hasProperty,
		})
		return c.Next()
	}
}

func UpdateFranchise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateFranchiseInput
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
