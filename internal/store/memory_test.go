package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queryinsights/domain/core"
	"queryinsights/domain/insight"
	"queryinsights/internal/errors"
)

func storedReport(source string) *insight.StoredReport {
	return &insight.StoredReport{
		ID:        core.NewReportID(),
		Source:    source,
		Report:    &insight.Report{},
		CreatedAt: core.Now(),
	}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryReportStore()
	ctx := context.Background()

	report := storedReport("first")
	require.NoError(t, s.Save(ctx, report))

	got, err := s.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryReportStore()

	_, err := s.GetByID(context.Background(), core.NewReportID())
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestMemoryStoreSaveRequiresID(t *testing.T) {
	s := NewMemoryReportStore()
	ctx := context.Background()

	assert.Error(t, s.Save(ctx, nil))
	assert.Error(t, s.Save(ctx, &insight.StoredReport{}))
}

func TestMemoryStoreListRecentNewestFirst(t *testing.T) {
	s := NewMemoryReportStore()
	ctx := context.Background()

	first := storedReport("first")
	second := storedReport("second")
	third := storedReport("third")
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))
	require.NoError(t, s.Save(ctx, third))

	recent, err := s.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, third.ID, recent[0].ID)
	assert.Equal(t, second.ID, recent[1].ID)

	all, err := s.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStoreSaveReplacesSameID(t *testing.T) {
	s := NewMemoryReportStore()
	ctx := context.Background()

	report := storedReport("original")
	require.NoError(t, s.Save(ctx, report))

	updated := *report
	updated.Source = "updated"
	require.NoError(t, s.Save(ctx, &updated))

	got, err := s.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Source)

	all, err := s.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
