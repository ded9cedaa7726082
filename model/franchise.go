package model

type FranchiseInquiry struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Phone       string `gorm:"not null" json:"phone"`
	Email       string `json:"email"`
	Region      string `json:"region"`
	Budget      string `json:"budget"`
	HasProperty bool   `gorm:"default:false" json:"hasProperty"`
	Status      string `gorm:"default:NEW" json:"status"`
	LeadGrade   string `gorm:"default:WARM" json:"leadGrade"`
	Memo        string `json:"memo"`
}

type CreateFranchiseInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Phone       string `json:"phone" validate:"required,min=9,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Region      string `json:"region" validate:"max=100"`
	Budget      string `json:"budget" validate:"max=100"`
	HasProperty *bool  `json:"hasProperty"`
}

type UpdateFranchiseInput struct {
	Status    *string `json:"status" validate:"omitempty,oneof=NEW CONTACTED MEETING CONTRACTED DROPPED"`
	LeadGrade *string `json:"leadGrade" validate:"omitempty,oneof=HOT WARM COLD"`
	Memo      *string `json:"memo" validate:"omitempty,max=500"`
}
