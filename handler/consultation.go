package handler

import (
	"academy_manager/config"
	"academy_manager/constants"
	"academy_manager/database"
	"academy_manager/model"
	"academy_manager/utils"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateConsultation(c *fiber.Ctx) error {
	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}
	consultation := c.Locals("createInput").(model.Consultation)
	consultation.Status = constants.CONSULT_PENDING

	if err := database.DB.Create(&consultation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	notifyAdmin(fmt.Sprintf("[Consultation] %s (%s %s) parent %s %s",
		consultation.StudentName, consultation.School, consultation.Grade,
		consultation.ParentName, consultation.ParentPhone))

	return utils.SuccessResponse(c, fiber.StatusCreated, consultation)
}

func GetConsultations(c *fiber.Ctx) error {
	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}

	var limit, page *int
	if l := c.QueryInt("limit"); l > 0 {
		limit = utils.Ptr(l)
	}
	if p := c.QueryInt("page"); p > 0 {
		page = utils.Ptr(p)
	}
	status := c.Query("status")

	query := database.DB.Model(&model.Consultation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var consultations []model.Consultation
	if err := utils.ApplyPagination(query.Order("created_at DESC"), limit, page).Find(&consultations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       consultations,
		Limit:      limit,
		Page:       page,
		TotalCount: total,
	})
}

func UpdateConsultationStatus(c *fiber.Ctx) error {
	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}
	id := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateConsultationStatusInput)

	var consultation model.Consultation
	if err := database.DB.First(&consultation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Consultation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	consultation.Status = input.Status
	if input.Memo != nil {
		consultation.Memo = *input.Memo
	}
	if err := database.DB.Save(&consultation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, consultation)
}

// notifyAdmin pushes a submission alert over SMS and email. Both channels are
// best effort; a failed notification never fails the request.
func notifyAdmin(text string) {
	if adminPhone := config.Config("ADMIN_PHONE"); adminPhone != "" {
		if err := utils.SendSMS(adminPhone, text); err != nil {
			log.Printf("admin sms failed: %v", err)
		}
	}
	utils.SendAdminEmail("New submission", text)
}
