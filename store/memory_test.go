package store

import (
	"errors"
	"testing"

	"academy_manager/model"
)

func TestMemoryStoreCreateAndRead(t *testing.T) {
	s := NewMemoryStore()

	p := &model.Payment{OrderID: "ORD_1", StudentName: "Kim", ProductType: "regular", Amount: 300000}
	if err := s.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected assigned id")
	}

	got, err := s.ByOrderID("ORD_1")
	if err != nil {
		t.Fatalf("byOrderID: %v", err)
	}
	if got.StudentName != "Kim" {
		t.Errorf("got %q, want Kim", got.StudentName)
	}

	if _, err := s.ByOrderID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDuplicateOrderID(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Create(&model.Payment{OrderID: "ORD_dup", StudentName: "A", Amount: 1}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := s.Create(&model.Payment{OrderID: "ORD_dup", StudentName: "B", Amount: 2})
	if !errors.Is(err, ErrDuplicateOrderID) {
		t.Fatalf("expected ErrDuplicateOrderID, got %v", err)
	}

	_, total, err := s.List(nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Errorf("duplicate must not create a second row, total = %d", total)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	for _, id := range []string{"ORD_a", "ORD_b", "ORD_c"} {
		if err := s.Create(&model.Payment{OrderID: id, StudentName: "x", Amount: 1}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	rows, total, err := s.List(nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("total = %d, len = %d", total, len(rows))
	}
	if rows[0].OrderID != "ORD_c" || rows[2].OrderID != "ORD_a" {
		t.Errorf("expected newest first, got %s..%s", rows[0].OrderID, rows[2].OrderID)
	}

	limit, page := 2, 2
	rows, total, err = s.List(&limit, &page)
	if err != nil {
		t.Fatalf("paginated list: %v", err)
	}
	if total != 3 || len(rows) != 1 || rows[0].OrderID != "ORD_a" {
		t.Errorf("page 2 of limit 2: got %d rows (total %d)", len(rows), total)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	p := &model.Payment{OrderID: "ORD_u", StudentName: "Kim", Amount: 100, Status: "PENDING"}
	if err := s.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	p.Status = "PAID"
	if err := s.Update(p); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.ByID(p.ID)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got.Status != "PAID" {
		t.Errorf("status = %q, want PAID", got.Status)
	}

	if err := s.Update(&model.Payment{DTO: model.DTO{ID: 999}}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestMemoryStoreNotDurable(t *testing.T) {
	if NewMemoryStore().Durable() {
		t.Error("memory store must report non-durable")
	}
}
