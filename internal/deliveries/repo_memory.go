package deliveries

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used when no database is configured and in tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []Delivery
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Insert(ctx context.Context, record DeliveryRecord) (Delivery, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	row := Delivery{
		ID:             r.nextID,
		DeliveryRecord: record,
		CreatedAt:      time.Now().UTC(),
	}
	r.nextID++
	r.rows = append(r.rows, row)
	return row, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Delivery, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return Delivery{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Delivery, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Delivery, 0, limit)
	// newest first
	for i := len(r.rows) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
