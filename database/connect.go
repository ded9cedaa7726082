package database

import (
	"academy_manager/config"
	"academy_manager/model"
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and runs the additive migration. It returns an
// error instead of panicking so the caller can keep serving with the volatile
// payment store when the database is unreachable.
func Connect() error {
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT %q: %w", p, err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// AutoMigrate only ever adds tables and columns, so re-running it on every
	// deploy is a no-op once the schema is convergent.
	if err := db.AutoMigrate(
		&model.Account{},
		&model.Consultation{},
		&model.FranchiseInquiry{},
		&model.Payment{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	DB = db
	SeedAdminAccount(db)
	return nil
}

// Available reports whether the relational database was reachable at startup.
func Available() bool {
	return DB != nil
}
