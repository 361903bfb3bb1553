package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"queryinsights/domain/core"
	"queryinsights/domain/result"
	"queryinsights/internal"
	"queryinsights/internal/errors"
)

// computeRequest carries one result set to summarize
type computeRequest struct {
	Columns []result.Column `json:"columns"`
	Rows    []result.Row    `json:"rows"`
	TopN    int             `json:"topN,omitempty"`
	Source  string          `json:"source,omitempty"`
}

func (req *computeRequest) set() *result.Set {
	return &result.Set{Columns: req.Columns, Rows: req.Rows}
}

type batchRequest struct {
	ResultSets []computeRequest `json:"resultSets"`
	TopN       int              `json:"topN,omitempty"`
	Source     string           `json:"source,omitempty"`
}

type queryRequest struct {
	SQL  string `json:"sql"`
	TopN int    `json:"topN,omitempty"`
}

type distributionRequest struct {
	Columns []result.Column `json:"columns"`
	Rows    []result.Row    `json:"rows"`
	Column  string          `json:"column"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid request body"))
		return
	}

	stored, err := a.service.Compute(r.Context(), req.set(), req.Source, req.TopN)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stored)
}

func (a *App) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid request body"))
		return
	}
	if len(req.ResultSets) == 0 {
		respondError(w, errors.InvalidInput("resultSets must not be empty"))
		return
	}

	sets := make([]*result.Set, len(req.ResultSets))
	for i := range req.ResultSets {
		sets[i] = req.ResultSets[i].set()
	}

	stored, err := a.service.ComputeBatch(r.Context(), sets, req.Source, req.TopN)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reports": stored})
}

func (a *App) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid request body"))
		return
	}
	if req.SQL == "" {
		respondError(w, errors.InvalidInput("sql is required"))
		return
	}

	stored, err := a.service.ComputeQuery(r.Context(), req.SQL, req.TopN)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stored)
}

func (a *App) handleDistribution(w http.ResponseWriter, r *http.Request) {
	var req distributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid request body"))
		return
	}

	profile, err := a.service.Distribution(&result.Set{Columns: req.Columns, Rows: req.Rows}, req.Column)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, errors.InvalidInput(err.Error()))
		return
	}

	stored, err := a.service.GetReport(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stored)
}

func (a *App) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	reports, err := a.service.ListReports(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		internal.DefaultLogger.Error("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
