package instrumented

import (
	"context"
	"time"

	"shortlink/internal/domain/link"
	"shortlink/internal/lib/metrics"
	"shortlink/internal/storage"
)

// Storage decorates another storage.Storage with Prometheus operation
// counters and latency histograms.
type Storage struct {
	next storage.Storage
}

func New(next storage.Storage) *Storage {
	return &Storage{next: next}
}

func (s *Storage) SaveLink(ctx context.Context, ownerID, shortCode, originalURL string) (link.Link, error) {
	const op = "SaveLink"
	start := time.Now()
	l, err := s.next.SaveLink(ctx, ownerID, shortCode, originalURL)
	s.recordMetrics(op, err, start)
	return l, err
}

func (s *Storage) UpdateLink(ctx context.Context, id int64, ownerID, shortCode, originalURL string) (link.Link, error) {
	const op = "UpdateLink"
	start := time.Now()
	l, err := s.next.UpdateLink(ctx, id, ownerID, shortCode, originalURL)
	s.recordMetrics(op, err, start)
	return l, err
}

func (s *Storage) DeleteLink(ctx context.Context, id int64, ownerID string) (bool, error) {
	const op = "DeleteLink"
	start := time.Now()
	removed, err := s.next.DeleteLink(ctx, id, ownerID)
	s.recordMetrics(op, err, start)
	return removed, err
}

func (s *Storage) GetLinkByCode(ctx context.Context, shortCode string) (link.Link, error) {
	const op = "GetLinkByCode"
	start := time.Now()
	l, err := s.next.GetLinkByCode(ctx, shortCode)
	s.recordMetrics(op, err, start)
	return l, err
}

func (s *Storage) ListLinksByOwner(ctx context.Context, ownerID string) ([]link.Link, error) {
	const op = "ListLinksByOwner"
	start := time.Now()
	links, err := s.next.ListLinksByOwner(ctx, ownerID)
	s.recordMetrics(op, err, start)
	return links, err
}

func (s *Storage) Close() error {
	return s.next.Close()
}

func (s *Storage) recordMetrics(operation string, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}
