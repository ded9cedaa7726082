package database

import (
	"academy_manager/config"
	"academy_manager/constants"
	"academy_manager/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminAccount ensures the single admin account exists. Credentials come
// from the environment; startup fails when they are missing.
func SeedAdminAccount(db *gorm.DB) {
	username := config.MustConfig("ADMIN_USERNAME")
	password := config.MustConfig("ADMIN_PASSWORD")

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	account := model.Account{
		Username: username,
		Password: string(bytes),
		Role:     constants.ROLE_ADMIN,
	}
	if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
		log.Println("failed to seed admin account:", account.Username, "error:", err)
	}
}
