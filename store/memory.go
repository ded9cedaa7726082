package store

import (
	"sync"
	"time"

	"academy_manager/model"
)

// MemoryStore is the volatile stand-in used when the database is unreachable
// at startup. Records live in insertion order and disappear on restart.
// Fiber handlers run on multiple goroutines, so access is mutex-guarded.
type MemoryStore struct {
	mu       sync.Mutex
	payments []model.Payment
	nextID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Create(p *model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].OrderID == p.OrderID {
			return ErrDuplicateOrderID
		}
	}

	p.ID = s.nextID
	s.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.payments = append(s.payments, *p)
	return nil
}

func (s *MemoryStore) ByID(id uint) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			p := s.payments[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ByOrderID(orderID string) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].OrderID == orderID {
			p := s.payments[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) List(limit, page *int) ([]model.Payment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first, matching the durable store.
	out := make([]model.Payment, 0, len(s.payments))
	for i := len(s.payments) - 1; i >= 0; i-- {
		out = append(out, s.payments[i])
	}
	total := int64(len(out))

	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		start := *limit * (*page - 1)
		if start >= len(out) {
			return []model.Payment{}, total, nil
		}
		end := start + *limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (s *MemoryStore) Update(p *model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			s.payments[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Durable() bool { return false }
