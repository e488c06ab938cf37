// Package webapi implements the REST dispatcher over the scoring packages.
// Every handler takes one catalog snapshot up front and serves the whole
// request from it, so concurrent catalog edits never produce a mixed view.
package webapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/benchmark"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/canary"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/costing"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/decision"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/guide"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/history"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/scenarios"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/usecase"
)

// Version is set at build time or defaults to dev.
var Version = "dev"

// Handlers holds the HTTP handler methods for the workbench API.
type Handlers struct {
	store   *catalog.Store
	history *history.Store
	logger  *slog.Logger
}

// NewHandlers creates handlers over the given catalog store and history log.
func NewHandlers(store *catalog.Store, hist *history.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{store: store, history: hist, logger: logger}
}

// RegisterRoutes registers all API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/models", h.HandleModels)
	mux.HandleFunc("GET /api/scenarios", h.HandleScenarios)
	mux.HandleFunc("GET /api/example-output", h.HandleExampleOutput)
	mux.HandleFunc("GET /api/ecommerce-example", h.HandleEcommerceExample)
	mux.HandleFunc("GET /api/mistakes", h.HandleMistakes)
	mux.HandleFunc("GET /api/reevaluation-triggers", h.HandleReevaluationTriggers)
	mux.HandleFunc("GET /api/history", h.HandleHistory)
	mux.HandleFunc("GET /api/history/archive", h.HandleHistoryArchive)
	mux.HandleFunc("GET /api/history/{id}", h.HandleHistoryDetail)
	mux.HandleFunc("POST /api/models/custom", h.HandleAddCustomModel)
	mux.HandleFunc("POST /api/models/select", h.HandleSelectModels)
	mux.HandleFunc("POST /api/cost", h.HandleCost)
	mux.HandleFunc("POST /api/select", h.HandleEvaluate)
	mux.HandleFunc("POST /api/benchmark", h.HandleBenchmark)
	mux.HandleFunc("POST /api/decision", h.HandleDecision)
	mux.HandleFunc("POST /api/canary", h.HandleCanary)
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: Version})
}

// HandleModels reloads the persisted overlay and returns the active catalog.
func (h *Handlers) HandleModels(w http.ResponseWriter, _ *http.Request) {
	if err := h.store.Reload(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	snap := h.store.Snapshot()
	writeJSON(w, http.StatusOK, ModelsResponse{
		Models:         snap.Catalog.Profiles(),
		SelectedModels: snap.Selected,
	})
}

// HandleScenarios returns the built-in scenario set.
func (h *Handlers) HandleScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenarios.Defaults())
}

// HandleExampleOutput returns the fixed sample comparison.
func (h *Handlers) HandleExampleOutput(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, guide.Example())
}

// HandleEcommerceExample runs the end-to-end walkthrough on the active
// catalog.
func (h *Handlers) HandleEcommerceExample(w http.ResponseWriter, _ *http.Request) {
	example, err := guide.Ecommerce(h.store.Snapshot().Catalog)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, example)
}

// HandleMistakes returns the common-mistakes table.
func (h *Handlers) HandleMistakes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]guide.Mistake{"mistakes": guide.Mistakes()})
}

// HandleReevaluationTriggers returns the re-evaluation trigger table.
func (h *Handlers) HandleReevaluationTriggers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, guide.ReevaluationTriggers())
}

// HandleAddCustomModel validates, persists, and publishes a user-defined
// model, then returns the refreshed catalog.
func (h *Handlers) HandleAddCustomModel(w http.ResponseWriter, r *http.Request) {
	var req CustomModelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "model name is required")
		return
	}

	key, err := h.store.AddCustom(req.Key, req.Profile())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.logger.Debug("custom model stored", "key", key)

	snap := h.store.Snapshot()
	writeJSON(w, http.StatusOK, ModelsResponse{
		Models:         snap.Catalog.Profiles(),
		SelectedModels: snap.Selected,
	})
}

// HandleSelectModels replaces the selected-model list.
func (h *Handlers) HandleSelectModels(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	selected, err := h.store.SetSelected(req.SelectedModels)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SelectResponse{SelectedModels: selected})
}

// HandleCost returns cost breakdowns for the requested (or selected) models,
// sorted ascending by total monthly cost.
func (h *Handlers) HandleCost(w http.ResponseWriter, r *http.Request) {
	var req CostRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RequestsPerDay == 0 {
		req.RequestsPerDay = 10000
	}

	snap := h.store.Snapshot()
	ids := resolveModels(snap, req.Models)

	results := make([]costing.Breakdown, 0, len(ids))
	for _, id := range ids {
		breakdown, err := costing.Estimate(snap.Catalog, costing.Request{
			ModelID:         id,
			RequestsPerDay:  req.RequestsPerDay,
			AvgInputTokens:  req.AvgInputTokens,
			AvgOutputTokens: req.AvgOutputTokens,
		})
		if err != nil {
			writeComputeError(w, err)
			return
		}
		results = append(results, breakdown)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalMonthly < results[j].TotalMonthly
	})

	resp := map[string][]costing.Breakdown{"results": results}
	h.record("cost", req, resp)
	writeJSON(w, http.StatusOK, resp)
}

// HandleEvaluate scores one model against the supplied (or built-in)
// scenarios.
func (h *Handlers) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap := h.store.Snapshot()
	modelID := req.Model
	if modelID == "" && len(snap.Selected) > 0 {
		modelID = snap.Selected[0]
	}
	list := req.Scenarios
	if len(list) == 0 {
		list = scenarios.Defaults()
	}

	result, err := usecase.Evaluate(snap.Catalog, modelID, list)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	h.record("evaluate", req, result)
	writeJSON(w, http.StatusOK, result)
}

// HandleBenchmark runs the synthetic benchmark over the requested (or
// selected) models.
func (h *Handlers) HandleBenchmark(w http.ResponseWriter, r *http.Request) {
	var req BenchmarkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap := h.store.Snapshot()
	ids := resolveModels(snap, req.Models)
	cases := req.TestCases
	if len(cases) == 0 {
		cases = scenarios.Cases(scenarios.Defaults())
	}

	result, err := benchmark.Run(snap.Catalog, ids, cases, req.Iterations)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	h.record("benchmark", req, result)
	writeJSON(w, http.StatusOK, result)
}

// HandleDecision returns the constraint-based recommendation.
func (h *Handlers) HandleDecision(w http.ResponseWriter, r *http.Request) {
	req := DecisionRequest{
		AccuracyRequirement:  0.85,
		LatencyRequirementMS: 1000,
		BudgetPerMonth:       10000,
		UseCase:              "customer_support",
		RequestsPerDay:       100000,
	}
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := decision.Recommend(h.store.Snapshot().Catalog, decision.Request{
		MinQuality:     req.AccuracyRequirement,
		MaxLatencyMS:   req.LatencyRequirementMS,
		BudgetPerMonth: req.BudgetPerMonth,
		UseCase:        req.UseCase,
		RequestsPerDay: req.RequestsPerDay,
	})
	if err != nil {
		writeComputeError(w, err)
		return
	}
	h.record("decision", req, result)
	writeJSON(w, http.StatusOK, result)
}

// HandleCanary simulates a progressive rollout between two models.
func (h *Handlers) HandleCanary(w http.ResponseWriter, r *http.Request) {
	req := CanaryRequest{FinalTrafficPercent: 100}
	if !decodeBody(w, r, &req) {
		return
	}

	snap := h.store.Snapshot()
	current := req.CurrentModel
	if current == "" && len(snap.Selected) > 0 {
		current = snap.Selected[0]
	}
	next := req.NewModel
	if next == "" {
		if len(snap.Selected) > 1 {
			next = snap.Selected[1]
		} else {
			next = current
		}
	}

	result, err := canary.Simulate(snap.Catalog, current, next, req.FinalTrafficPercent)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	h.record("canary", req, result)
	writeJSON(w, http.StatusOK, result)
}

// HandleHistory lists stored request records, oldest first.
func (h *Handlers) HandleHistory(w http.ResponseWriter, _ *http.Request) {
	records, err := h.history.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleHistoryDetail returns a single request record by id.
func (h *Handlers) HandleHistoryDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "record id is required")
		return
	}
	rec, err := h.history.Find(id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, "record not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// HandleHistoryArchive streams the full history as gzip-compressed JSON.
func (h *Handlers) HandleHistoryArchive(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", `attachment; filename="request_history.json.gz"`)
	if err := h.history.ExportArchive(w); err != nil {
		h.logger.Warn("history archive export failed", "error", err)
	}
}

// record appends to the history log; failures are logged, never surfaced.
func (h *Handlers) record(kind string, request, result any) {
	if h.history == nil {
		return
	}
	if _, err := h.history.Append(kind, request, result); err != nil {
		h.logger.Warn("history append failed", "kind", kind, "error", err)
	}
}

// resolveModels filters the requested ids to known ones, falling back to the
// current selection when the request names none.
func resolveModels(snap *catalog.Snapshot, requested []string) []string {
	if len(requested) == 0 {
		return snap.Selected
	}
	ids := make([]string, 0, len(requested))
	for _, id := range requested {
		if snap.Catalog.Has(id) {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return snap.Selected
	}
	return ids
}

// writeComputeError maps scoring errors to transport statuses: unknown model
// ids are 404, malformed inputs 400, everything else 500.
func writeComputeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scenarios.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody decodes an optional JSON body. A missing or empty body leaves v
// at its defaults.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
