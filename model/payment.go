package model

import "time"

type Payment struct {
	DTO
	OrderID        string     `gorm:"uniqueIndex;not null" json:"orderId"`
	StudentName    string     `gorm:"not null" json:"studentName"`
	StudentPhone   string     `json:"studentPhone"`
	ParentPhone    string     `json:"parentPhone"`
	ProductType    string     `gorm:"not null" json:"productType"`
	Amount         int64      `gorm:"not null" json:"amount"`
	DiscountAmount int64      `gorm:"default:0" json:"discountAmount"`
	DiscountNote   string     `json:"discountNote"`
	Status         string     `gorm:"default:PENDING" json:"status"`
	ManualNote     string     `json:"manualNote"`
	PaymentKey     string     `json:"paymentKey"`
	ReceiptURL     string     `json:"receiptUrl"`
	CanceledAmount int64      `gorm:"default:0" json:"canceledAmount"`
	PaidAt         *time.Time `json:"paidAt"`
}

type CreatePaymentInput struct {
	OrderID        string `json:"orderId" validate:"omitempty,max=64"`
	StudentName    string `json:"studentName" validate:"required,max=50"`
	StudentPhone   string `json:"studentPhone" validate:"omitempty,min=9,max=20"`
	ParentPhone    string `json:"parentPhone" validate:"omitempty,min=9,max=20"`
	ProductType    string `json:"productType" validate:"required,max=50"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	DiscountAmount int64  `json:"discountAmount" validate:"gte=0"`
	DiscountNote   string `json:"discountNote" validate:"max=200"`
}

type ConfirmPaymentInput struct {
	PaymentKey string `json:"paymentKey" validate:"required"`
	OrderID    string `json:"orderId" validate:"required"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
}

type CancelPaymentInput struct {
	Reason string `json:"reason" validate:"required,max=200"`
	Amount *int64 `json:"amount" validate:"omitempty,gt=0"`
}

type UpdatePaymentNoteInput struct {
	ManualNote string `json:"manualNote" validate:"max=500"`
}
