package commissionhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/commission"
	"backoffice/internal/platform/lenient"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Service *commission.Service
	Metrics *metrics.Collector
}

func NewHandler(service *commission.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

type rowPayload struct {
	Record               commission.Record    `json:"record"`
	Entry                commission.EntryForm `json:"entry"`
	TargetAchieved       lenient.Number       `json:"targetAchieved"`
	CommissionBranchName string               `json:"commissionBranchName"`
}

type recordPayload struct {
	Record               commission.Record `json:"record"`
	TargetAchieved       lenient.Number    `json:"targetAchieved"`
	CommissionBranchName string            `json:"commissionBranchName"`
}

type reportPayload struct {
	Record               commission.Record `json:"record"`
	CommissionBranchName string            `json:"commissionBranchName"`
	Employees            map[string]string `json:"employees"`
}

type listPayload struct {
	Records []commission.Record   `json:"records"`
	Filter  commission.ListFilter `json:"filter"`
}

type recordResponse struct {
	Record  commission.Record  `json:"record"`
	Summary commission.Summary `json:"summary"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/commission", func(r chi.Router) {
		r.Post("/rows/preview", h.handlePreview)
		r.Post("/rows", h.handleAddRow)
		r.Put("/rows/{index}", h.handleUpdateRow)
		r.Delete("/rows/{index}", h.handleRemoveRow)
		r.Post("/recompute", h.handleRecompute)
		r.Post("/report", h.handleReport)
		r.Post("/list", h.handleList)
	})
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload rowPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	validator := shared.NewValidator()
	validator.Struct(payload)
	if validator.Reject(w, requestID) {
		return
	}

	row := h.Service.Preview(r.Context(), payload.Record, payload.Entry.Entry(), payload.TargetAchieved.Float64(), payload.CommissionBranchName)
	h.Metrics.Count(metrics.CalcCommission)
	api.Success(w, row, requestID)
}

func (h *Handler) handleAddRow(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload rowPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	validator := shared.NewValidator()
	validator.Struct(payload)
	if validator.Reject(w, requestID) {
		return
	}

	rec, summary := h.Service.Add(r.Context(), payload.Record, payload.Entry.Entry(), payload.TargetAchieved.Float64(), payload.CommissionBranchName)
	h.Metrics.Count(metrics.CalcCommission)
	api.Success(w, recordResponse{Record: rec, Summary: summary}, requestID)
}

func (h *Handler) handleUpdateRow(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	index, ok := rowIndex(w, r)
	if !ok {
		return
	}
	var payload rowPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	validator := shared.NewValidator()
	validator.Struct(payload)
	if validator.Reject(w, requestID) {
		return
	}

	rec, summary, err := h.Service.Update(r.Context(), payload.Record, index, payload.Entry.Entry(), payload.TargetAchieved.Float64(), payload.CommissionBranchName)
	if err != nil {
		failRowError(w, err, requestID)
		return
	}
	h.Metrics.Count(metrics.CalcCommission)
	api.Success(w, recordResponse{Record: rec, Summary: summary}, requestID)
}

func (h *Handler) handleRemoveRow(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	index, ok := rowIndex(w, r)
	if !ok {
		return
	}
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	rec, summary, err := h.Service.Remove(r.Context(), payload.Record, index)
	if err != nil {
		failRowError(w, err, requestID)
		return
	}
	api.Success(w, recordResponse{Record: rec, Summary: summary}, requestID)
}

func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	rec, summary := h.Service.Recompute(r.Context(), payload.Record, payload.TargetAchieved.Float64(), payload.CommissionBranchName)
	h.Metrics.Count(metrics.CalcCommission)
	api.Success(w, recordResponse{Record: rec, Summary: summary}, requestID)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload reportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	report := h.Service.Report(r.Context(), payload.Record, payload.CommissionBranchName, commission.DirectoryMap(payload.Employees))
	api.Success(w, report, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload listPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	if payload.Filter.From != "" {
		validator.Month("filter.from", payload.Filter.From)
	}
	if payload.Filter.To != "" {
		validator.Month("filter.to", payload.Filter.To)
	}
	if validator.Reject(w, requestID) {
		return
	}

	entries := h.Service.List(r.Context(), payload.Records, payload.Filter)
	window, page := shared.Paginate(entries, shared.ParsePagination(r, 50, 200))
	api.SuccessWithMeta(w, window, page, requestID)
}

func rowIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_index", "row index must be a non-negative integer", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return index, true
}

func failRowError(w http.ResponseWriter, err error, requestID string) {
	if errors.Is(err, commission.ErrRowIndex) {
		api.Fail(w, http.StatusNotFound, "row_not_found", "commission row not found", requestID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "commission_failed", "failed to update commission record", requestID)
}
