package deliveries

import "context"

// Repo persists DeliveryRecords.
type Repo interface {
	Insert(ctx context.Context, record DeliveryRecord) (Delivery, error)
	GetByID(ctx context.Context, id int64) (Delivery, error)
	List(ctx context.Context, limit, offset int) ([]Delivery, error)
}
