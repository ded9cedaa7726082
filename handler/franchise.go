package handler

import (
	"academy_manager/constants"
	"academy_manager/database"
	"academy_manager/model"
	"academy_manager/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateFranchiseInquiry(c *fiber.Ctx) error {
	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}
	inquiry := c.Locals("createInput").(model.FranchiseInquiry)
	inquiry.Status = constants.FRANCHISE_NEW
	inquiry.LeadGrade = constants.LEAD_WARM

	if err := database.DB.Create(&inquiry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	notifyAdmin(fmt.Sprintf("[Franchise] %s %s region %s budget %s",
		inquiry.Name, inquiry.Phone, inquiry.Region, inquiry.Budget))

	return utils.SuccessResponse(c, fiber.StatusCreated, inquiry)
}

func GetFranchiseInquiries(c *fiber.Ctx) error {
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

	query := database.DB.Model(&model.FranchiseInquiry{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if grade := c.Query("leadGrade"); grade != "" {
		query = query.Where("lead_grade = ?", grade)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var inquiries []model.FranchiseInquiry
	if err := utils.ApplyPagination(query.Order("created_at DESC"), limit, page).Find(&inquiries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       inquiries,
		Limit:      limit,
		Page:       page,
		TotalCount: total,
	})
}

func UpdateFranchiseInquiry(c *fiber.Ctx) error {
	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}
	id := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateFranchiseInput)

	var inquiry model.FranchiseInquiry
	if err := database.DB.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Franchise inquiry not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Status != nil {
		inquiry.Status = *input.Status
	}
	if input.LeadGrade != nil {
		inquiry.LeadGrade = *input.LeadGrade
	}
	if input.Memo != nil {
		inquiry.Memo = *input.Memo
	}
	if err := database.DB.Save(&inquiry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, inquiry)
}
