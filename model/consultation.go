package model

import "time"

type Consultation struct {
	DTO
	StudentName string    `gorm:"not null" json:"studentName"`
	School      string    `json:"school"`
	Grade       string    `json:"grade"`
	ParentName  string    `gorm:"not null" json:"parentName"`
	ParentPhone string    `gorm:"not null" json:"parentPhone"`
	ConsultDate time.Time `json:"consultDate"`
	Status      string    `gorm:"default:PENDING" json:"status"`
	Memo        string    `json:"memo"`
}

type CreateConsultationInput struct {
	StudentName string `json:"studentName" validate:"required,max=50"`
	School      string `json:"school" validate:"max=100"`
	Grade       string `json:"grade" validate:"max=20"`
	ParentName  string `json:"parentName" validate:"required,max=50"`
	ParentPhone string `json:"parentPhone" validate:"required,min=9,max=20"`
	ConsultDate string `json:"consultDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateConsultationStatusInput struct {
	Status string  `json:"status" validate:"required,oneof=PENDING CONFIRMED DONE CANCELED"`
	Memo   *string `json:"memo" validate:"omitempty,max=500"`
}
