package store

import (
	"context"
	"sync"

	"queryinsights/domain/core"
	"queryinsights/domain/insight"
	"queryinsights/internal/errors"
	"queryinsights/ports"
)

// MemoryReportStore is the in-process ReportRepository used when no
// database is configured. Reports are kept in insertion order for
// recency listing.
type MemoryReportStore struct {
	mu      sync.RWMutex
	reports map[core.ReportID]*insight.StoredReport
	order   []core.ReportID
}

// NewMemoryReportStore creates an empty in-memory report store
func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{
		reports: make(map[core.ReportID]*insight.StoredReport),
	}
}

var _ ports.ReportRepository = (*MemoryReportStore)(nil)

// Save stores a report, replacing any previous report with the same ID
func (s *MemoryReportStore) Save(_ context.Context, report *insight.StoredReport) error {
	if report == nil || report.ID.String() == "" {
		return errors.InvalidInput("stored report requires an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reports[report.ID]; !exists {
		s.order = append(s.order, report.ID)
	}
	s.reports[report.ID] = report
	return nil
}

// GetByID retrieves a stored report
func (s *MemoryReportStore) GetByID(_ context.Context, id core.ReportID) (*insight.StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, errors.NotFound("report " + id.String())
	}
	return report, nil
}

// ListRecent returns up to limit reports, newest first
func (s *MemoryReportStore) ListRecent(_ context.Context, limit int) ([]*insight.StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(s.order) {
		limit = len(s.order)
	}
	recent := make([]*insight.StoredReport, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, s.reports[s.order[i]])
	}
	return recent, nil
}
