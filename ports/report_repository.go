package ports

import (
	"context"

	"queryinsights/domain/core"
	"queryinsights/domain/insight"
)

// ReportRepository persists computed statistics reports.
type ReportRepository interface {
	Save(ctx context.Context, report *insight.StoredReport) error
	GetByID(ctx context.Context, id core.ReportID) (*insight.StoredReport, error)
	ListRecent(ctx context.Context, limit int) ([]*insight.StoredReport, error)
}
