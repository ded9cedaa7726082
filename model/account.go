package model

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:ADMIN" json:"role"`
}
