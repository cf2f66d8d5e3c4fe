package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stevenkilzer/calc/internal/metrics"
	"github.com/stevenkilzer/calc/internal/sample"
	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/finance"
)

// handleCalculate runs an ad-hoc calculation over the posted inputs without
// touching the store.
func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "calculate"

	var req calculateRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		metrics.Calculations.WithLabelValues("adhoc", "error").Inc()
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	horizon := req.HorizonMonths
	if horizon <= 0 {
		horizon = h.horizonMonths
	}

	resp := h.calculate(req.snapshot(), horizon)
	metrics.Calculations.WithLabelValues("adhoc", "ok").Inc()
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) calculate(snapshot finance.Snapshot, horizon int) calculateResponse {
	start := time.Now()

	fin := finance.CalculateFinancials(snapshot)
	projection := h.engine.Project(fin, horizon)
	amortization := h.engine.AmortizationSchedule(fin)

	outcome := "false"
	if projection.BreakEvenMonth != nil {
		outcome = "true"
	}
	metrics.BreakEvenReached.WithLabelValues(outcome).Inc()

	return calculateResponse{
		Financials:     fin,
		Schedule:       projection.Schedule,
		Amortization:   amortization,
		BreakEvenMonth: projection.BreakEvenMonth,
		Duration:       time.Since(start).String(),
	}
}

func (h *handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	const op = "list-projects"

	projects, err := h.repo.List(r.Context())
	if err != nil {
		metrics.StoreOperations.WithLabelValues("list", "error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to list projects", op)
		return
	}

	metrics.StoreOperations.WithLabelValues("list", "ok").Inc()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
		"count":    len(projects),
	})
}

func (h *handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	const op = "create-project"

	var req createProjectRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		h.respondError(w, http.StatusBadRequest, "project name is required", op)
		return
	}

	project := &store.Project{
		ID:   uuid.NewString(),
		Name: name,
	}
	switch {
	case req.Sample:
		project = sample.NewProject(project.ID, name)
	case req.Data != nil:
		project.Data = *req.Data
	}

	if err := h.repo.Save(r.Context(), project); err != nil {
		metrics.StoreOperations.WithLabelValues("save", "error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to save project", op)
		return
	}

	metrics.StoreOperations.WithLabelValues("save", "ok").Inc()
	h.logger.Info("created project",
		zap.String("op", op),
		zap.String("id", project.ID),
		zap.String("name", project.Name),
	)
	h.writeJSON(w, http.StatusCreated, project)
}

func (h *handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	const op = "get-project"

	project, ok := h.loadProject(w, r, op)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, project)
}

func (h *handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	const op = "update-project"

	project, ok := h.loadProject(w, r, op)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), op)
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		project.Name = name
	}
	if req.Data != nil {
		project.Data = *req.Data
		// Inputs changed, so previously stored results no longer apply.
		project.Results = nil
	}

	if err := h.repo.Save(r.Context(), project); err != nil {
		metrics.StoreOperations.WithLabelValues("save", "error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to save project", op)
		return
	}

	metrics.StoreOperations.WithLabelValues("save", "ok").Inc()
	h.writeJSON(w, http.StatusOK, project)
}

func (h *handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	const op = "delete-project"

	id := chi.URLParam(r, "id")
	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "project not found", op)
		return
	}
	if err != nil {
		metrics.StoreOperations.WithLabelValues("delete", "error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to delete project", op)
		return
	}

	metrics.StoreOperations.WithLabelValues("delete", "ok").Inc()
	h.logger.Info("deleted project", zap.String("op", op), zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// handleCalculateProject recomputes a stored project's financials from its
// saved inputs and persists the results alongside the project.
func (h *handler) handleCalculateProject(w http.ResponseWriter, r *http.Request) {
	const op = "calculate-project"

	project, ok := h.loadProject(w, r, op)
	if !ok {
		metrics.Calculations.WithLabelValues("project", "error").Inc()
		return
	}

	resp := h.calculate(project.Data.Snapshot(), h.horizonMonths)

	project.Results = &resp.Financials
	if err := h.repo.Save(r.Context(), project); err != nil {
		metrics.Calculations.WithLabelValues("project", "error").Inc()
		metrics.StoreOperations.WithLabelValues("save", "error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to save results", op)
		return
	}

	metrics.Calculations.WithLabelValues("project", "ok").Inc()
	metrics.StoreOperations.WithLabelValues("save", "ok").Inc()
	h.logger.Info("calculated project",
		zap.String("op", op),
		zap.String("id", project.ID),
		zap.Float64("netRevenue", resp.Financials.NetRevenue),
		zap.Float64("operatingIncome", resp.Financials.OperatingIncome),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) loadProject(w http.ResponseWriter, r *http.Request, op string) (*store.Project, bool) {
	id := chi.URLParam(r, "id")

	project, err := h.repo.Load(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		metrics.StoreOperations.WithLabelValues("load", "miss").Inc()
		h.respondError(w, http.StatusNotFound, "project not found", op)
		return nil, false
	}
	if err != nil {
		metrics.StoreOperations.WithLabelValues("load", "error").Inc()
		h.respondError(w, http.StatusInternalServerError, "failed to load project", op)
		return nil, false
	}

	metrics.StoreOperations.WithLabelValues("load", "ok").Inc()
	return project, true
}
