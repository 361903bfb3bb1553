package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"queryinsights/domain/core"
	"queryinsights/domain/insight"
	"queryinsights/domain/result"
	"queryinsights/internal/errors"
	"queryinsights/ports"
)

// batchConcurrency bounds how many result sets are summarized at once.
// Each Compute call is pure, so concurrency lives only at this caller
// level.
const batchConcurrency = 4

// InsightService orchestrates computing, storing and retrieving
// statistics reports. The reader is optional; without it, query-backed
// computation is unavailable.
type InsightService struct {
	engine  ports.InsightEngine
	reports ports.ReportRepository
	reader  ports.ResultReader
}

// NewInsightService creates the insight service
func NewInsightService(engine ports.InsightEngine, reports ports.ReportRepository, reader ports.ResultReader) *InsightService {
	return &InsightService{
		engine:  engine,
		reports: reports,
		reader:  reader,
	}
}

// Compute summarizes one result set and stores the report. A topN
// below 1 uses the engine's configured top-frequent count.
func (s *InsightService) Compute(ctx context.Context, set *result.Set, source string, topN int) (*insight.StoredReport, error) {
	report, err := s.computeReport(set, topN)
	if err != nil {
		return nil, err
	}

	stored := &insight.StoredReport{
		ID:        core.NewReportID(),
		Source:    source,
		Report:    report,
		CreatedAt: core.Now(),
	}
	if err := s.reports.Save(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to store report")
	}
	return stored, nil
}

// ComputeBatch summarizes several result sets concurrently. Output
// order matches input order; the first failure cancels the rest.
func (s *InsightService) ComputeBatch(ctx context.Context, sets []*result.Set, source string, topN int) ([]*insight.StoredReport, error) {
	stored := make([]*insight.StoredReport, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, set := range sets {
		g.Go(func() error {
			report, err := s.Compute(gctx, set, source, topN)
			if err != nil {
				return errors.Wrapf(err, "result set %d", i)
			}
			stored[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stored, nil
}

// ComputeQuery executes SQL through the result reader and summarizes
// the outcome. Unavailable when no reader is configured.
func (s *InsightService) ComputeQuery(ctx context.Context, query string, topN int) (*insight.StoredReport, error) {
	if s.reader == nil {
		return nil, errors.Unavailable("no query backend configured")
	}
	set, err := s.reader.ReadQuery(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query execution failed")
	}
	return s.Compute(ctx, set, "query", topN)
}

// GetReport retrieves a stored report by ID
func (s *InsightService) GetReport(ctx context.Context, id core.ReportID) (*insight.StoredReport, error) {
	return s.reports.GetByID(ctx, id)
}

// ListReports returns the most recent stored reports
func (s *InsightService) ListReports(ctx context.Context, limit int) ([]*insight.StoredReport, error) {
	return s.reports.ListRecent(ctx, limit)
}

// Distribution computes the extended numeric profile for one column
func (s *InsightService) Distribution(set *result.Set, column string) (*insight.DistributionProfile, error) {
	return s.engine.DistributionProfile(set, column)
}

func (s *InsightService) computeReport(set *result.Set, topN int) (*insight.Report, error) {
	if topN < 1 {
		return s.engine.Compute(set)
	}
	return s.engine.ComputeTopN(set, topN)
}
