package deliveries

import (
	"context"
	"strings"
	"time"

	"delivery-backend/internal/llm"
	"delivery-backend/internal/shared/metrics"
	"delivery-backend/internal/shared/telemetry"
)

// Service runs the extraction pipeline: one synchronous pass through the
// extraction client, the sanitizer, the parser, and the persistence writer.
// A failure at any stage is terminal for the submission; the caller retries
// by submitting again.
type Service struct {
	Repo      Repo
	LLM       llm.Client
	MaxTokens int
}

// Process accepts a raw email body and returns the persisted delivery.
// Failures are typed: *TransportError from the extraction call,
// *MalformedResponseError from parsing, *PersistenceError from the insert.
func (s *Service) Process(ctx context.Context, emailText string) (Delivery, error) {
	if strings.TrimSpace(emailText) == "" {
		return Delivery{}, ErrEmptyEmail
	}

	metrics.IncExtractionStarted()
	start := time.Now()

	raw, err := s.LLM.ExtractDelivery(ctx, llm.ExtractInput{
		EmailText: emailText,
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		s.fail("extracting", err)
		return Delivery{}, &TransportError{Err: err}
	}

	sanitized := Sanitize(string(raw))

	record, err := ParseRecord(sanitized)
	if err != nil {
		s.fail("parsing", err)
		return Delivery{}, err
	}

	stored, err := s.Repo.Insert(ctx, record)
	if err != nil {
		s.fail("persisting", err)
		return Delivery{}, &PersistenceError{Err: err}
	}

	elapsed := time.Since(start)
	metrics.IncExtractionPersisted()
	metrics.ObserveExtractionDurationMs(float64(elapsed.Microseconds()) / 1000.0)
	telemetry.Info("extraction.persisted", map[string]any{
		"delivery_id": stored.ID,
		"order_id":    stored.OrderID,
		"carrier":     stored.Carrier,
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	})
	return stored, nil
}

// Get returns one persisted delivery by id.
func (s *Service) Get(ctx context.Context, id int64) (Delivery, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns persisted deliveries, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Delivery, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) fail(stage string, err error) {
	metrics.IncExtractionFailed()
	telemetry.Error("extraction.failed", map[string]any{
		"stage": stage,
		"error": err.Error(),
	})
}
