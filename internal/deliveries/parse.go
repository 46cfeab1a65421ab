package deliveries

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"delivery-backend/internal/shared/telemetry"
)

var recordKeys = map[string]struct{}{
	"delivery": {}, "price_num": {}, "description": {}, "order_id": {},
	"delivery_date": {}, "store": {}, "tracking_number": {}, "carrier": {},
}

// ParseRecord decodes a sanitized reply into a DeliveryRecord. Missing keys
// are a hard failure, except price_num which defaults to 0.00 when absent.
// Any failure is a MalformedResponseError carrying the offending text.
func ParseRecord(sanitized string) (DeliveryRecord, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(sanitized), &m); err != nil {
		return DeliveryRecord{}, &MalformedResponseError{Raw: sanitized, Err: fmt.Errorf("decode: %w", err)}
	}

	dropped := normalizePayload(m)
	if len(dropped) > 0 {
		telemetry.Warn("extraction.normalize", map[string]any{"dropped": dropped})
	}

	normalized, err := json.Marshal(m)
	if err != nil {
		return DeliveryRecord{}, &MalformedResponseError{Raw: sanitized, Err: fmt.Errorf("encode: %w", err)}
	}
	if err := ValidateAgainstSchema(BuildDeliverySchema(), normalized); err != nil {
		return DeliveryRecord{}, &MalformedResponseError{Raw: sanitized, Err: err}
	}

	var record DeliveryRecord
	if err := json.Unmarshal(normalized, &record); err != nil {
		return DeliveryRecord{}, &MalformedResponseError{Raw: sanitized, Err: err}
	}
	// The schema pattern only checks the shape; reject impossible calendar
	// dates here so they fail at the parsing stage, not at the insert.
	if record.DeliveryDate != "" {
		if _, err := time.Parse(dateLayout, record.DeliveryDate); err != nil {
			return DeliveryRecord{}, &MalformedResponseError{Raw: sanitized, Err: fmt.Errorf("delivery_date: %w", err)}
		}
	}
	return record, nil
}

// normalizePayload prepares the decoded payload for schema validation:
// unknown keys are removed so model noise doesn't fail a complete record,
// the delivery flag is lowercased, string values are trimmed, and price_num
// is coerced to a number or defaulted to 0.00 when absent or null.
func normalizePayload(m map[string]any) []string {
	var dropped []string
	for k := range m {
		if _, ok := recordKeys[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	// Absent and null both land on the nil case and take the 0.00 default.
	switch v := m["price_num"].(type) {
	case nil:
		m["price_num"] = 0.0
	case float64:
		// already a number
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(v, "$"))
		if s == "" {
			m["price_num"] = 0.0
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			m["price_num"] = f
		}
		// otherwise leave as-is; schema validation reports the mismatch
	}

	if v, ok := m["delivery"].(string); ok {
		m["delivery"] = strings.ToLower(strings.TrimSpace(v))
	}

	for _, k := range []string{"description", "order_id", "delivery_date", "store", "tracking_number", "carrier"} {
		if v, ok := m[k].(string); ok {
			m[k] = strings.TrimSpace(v)
		}
	}

	return dropped
}
