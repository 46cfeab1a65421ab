package deliveries

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const dateLayout = "2006-01-02"

// Insert appends exactly one row. Rows are immutable once written; there is
// deliberately no uniqueness constraint on order_id, so reprocessing the same
// email inserts a new row.
func (r *PGRepo) Insert(ctx context.Context, record DeliveryRecord) (Delivery, error) {
	const query = `
INSERT INTO deliveries (
	delivery, price_num, description, order_id, delivery_date, store, tracking_number, carrier
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`

	var deliveryDate any
	if record.DeliveryDate != "" {
		parsed, err := time.Parse(dateLayout, record.DeliveryDate)
		if err != nil {
			return Delivery{}, err
		}
		deliveryDate = parsed
	}

	row := Delivery{DeliveryRecord: record}
	err := r.DB.QueryRowContext(ctx, query,
		record.Delivery,
		record.PriceNum,
		record.Description,
		record.OrderID,
		deliveryDate,
		record.Store,
		record.TrackingNumber,
		record.Carrier,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return Delivery{}, err
	}
	return row, nil
}

// GetByID returns one persisted delivery.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Delivery, error) {
	const query = `
SELECT id, delivery, price_num, description, order_id, delivery_date, store, tracking_number, carrier, created_at
FROM deliveries
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	d, err := scanDelivery(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Delivery{}, ErrNotFound
	}
	return d, err
}

// List returns persisted deliveries, newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Delivery, error) {
	const query = `
SELECT id, delivery, price_num, description, order_id, delivery_date, store, tracking_number, carrier, created_at
FROM deliveries
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Delivery, 0, limit)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanDelivery(row scannable) (Delivery, error) {
	var d Delivery
	var deliveryDate sql.NullTime
	err := row.Scan(
		&d.ID,
		&d.Delivery,
		&d.PriceNum,
		&d.Description,
		&d.OrderID,
		&deliveryDate,
		&d.Store,
		&d.TrackingNumber,
		&d.Carrier,
		&d.CreatedAt,
	)
	if err != nil {
		return Delivery{}, err
	}
	if deliveryDate.Valid {
		d.DeliveryDate = deliveryDate.Time.Format(dateLayout)
	}
	return d, nil
}

var _ Repo = (*PGRepo)(nil)
