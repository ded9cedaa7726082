package store

import (
	"errors"
	"strings"

	"academy_manager/model"

	"gorm.io/gorm"
)

// DBStore persists payments through GORM.
type DBStore struct {
	DB *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{DB: db}
}

func (s *DBStore) Create(p *model.Payment) error {
	var count int64
	if err := s.DB.Model(&model.Payment{}).Where("order_id = ?", p.OrderID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateOrderID
	}
	if err := s.DB.Create(p).Error; err != nil {
		// The unique index can still fire on a concurrent insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicateOrderID
		}
		return err
	}
	return nil
}

func (s *DBStore) ByID(id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *DBStore) ByOrderID(orderID string) (*model.Payment, error) {
	var payment model.Payment
	if err := s.DB.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *DBStore) List(limit, page *int) ([]model.Payment, int64, error) {
	var payments []model.Payment
	var total int64
	if err := s.DB.Model(&model.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query := s.DB.Order("created_at DESC")
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit).Offset(*limit * (*page - 1))
	}
	if err := query.Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (s *DBStore) Update(p *model.Payment) error {
	return s.DB.Save(p).Error
}

func (s *DBStore) Durable() bool { return true }
