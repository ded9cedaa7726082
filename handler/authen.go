package handler

import (
	"academy_manager/constants"
	"academy_manager/database"
	"academy_manager/helper"
	"academy_manager/model"
	"academy_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Username == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}

	var account model.Account
	if err := database.DB.Where(&model.Account{Username: loginInput.Username}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(loginInput.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	tokenClaim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
		},
		"tokens": model.TokenData{
			AccessToken:  token,
			RefreshToken: refreshToken,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		type refreshInput struct {
			RefreshToken string `json:"refreshToken"`
		}
		var input refreshInput
		if err := c.BodyParser(&input); err == nil {
			refresh = input.RefreshToken
		}
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("invalid claims"))
	}
	accountId, _ := claims["accountId"].(float64)
	username, _ := claims["username"].(string)
	if accountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("no accountId"))
	}

	accessToken, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: uint(accountId), Username: username})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: accessToken, RefreshToken: refresh})
}
