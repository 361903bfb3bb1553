package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"queryinsights/domain/core"
	"queryinsights/domain/insight"
	"queryinsights/internal/errors"
	"queryinsights/ports"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// EnsureReportSchema creates the reports table when it does not exist
func EnsureReportSchema(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS insight_reports (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL DEFAULT '',
		report JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure insight_reports schema: %w", err)
	}
	return nil
}

// Save inserts a stored report
func (r *reportRepository) Save(ctx context.Context, report *insight.StoredReport) error {
	reportJSON, err := json.Marshal(report.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `INSERT INTO insight_reports (id, source, report, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET source = $2, report = $3, created_at = $4`

	_, err = r.db.ExecContext(ctx, query,
		report.ID.String(), report.Source, reportJSON, report.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// GetByID retrieves a stored report by its ID
func (r *reportRepository) GetByID(ctx context.Context, id core.ReportID) (*insight.StoredReport, error) {
	query := `SELECT id, source, report, created_at FROM insight_reports WHERE id = $1`

	var (
		rawID      string
		source     string
		reportJSON []byte
		createdAt  time.Time
	)
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&rawID, &source, &reportJSON, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("report " + id.String())
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return unmarshalStored(rawID, source, reportJSON, createdAt)
}

// ListRecent retrieves the most recently created reports
func (r *reportRepository) ListRecent(ctx context.Context, limit int) ([]*insight.StoredReport, error) {
	query := `SELECT id, source, report, created_at FROM insight_reports
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*insight.StoredReport
	for rows.Next() {
		var (
			rawID      string
			source     string
			reportJSON []byte
			createdAt  time.Time
		)
		if err := rows.Scan(&rawID, &source, &reportJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		stored, err := unmarshalStored(rawID, source, reportJSON, createdAt)
		if err != nil {
			return nil, err
		}
		reports = append(reports, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report iteration failed: %w", err)
	}

	return reports, nil
}

func unmarshalStored(id, source string, reportJSON []byte, createdAt time.Time) (*insight.StoredReport, error) {
	var report insight.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &insight.StoredReport{
		ID:        core.ReportID(id),
		Source:    source,
		Report:    &report,
		CreatedAt: core.NewTimestamp(createdAt),
	}, nil
}
