package deliveries

import "time"

// DeliveryRecord is the eight-field structured result of a single extraction.
// A record is only persisted when every key is present in the extraction
// service's reply; price_num alone defaults to 0.00 when absent.
type DeliveryRecord struct {
	Delivery       string  `json:"delivery"`
	PriceNum       float64 `json:"price_num"`
	Description    string  `json:"description"`
	OrderID        string  `json:"order_id"`
	DeliveryDate   string  `json:"delivery_date"`
	Store          string  `json:"store"`
	TrackingNumber string  `json:"tracking_number"`
	Carrier        string  `json:"carrier"`
}

// Delivery is a persisted DeliveryRecord. Rows are immutable once written;
// no update or delete path exists.
type Delivery struct {
	ID int64 `json:"id"`
	DeliveryRecord
	CreatedAt time.Time `json:"created_at"`
}
