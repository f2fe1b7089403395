package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/payroll"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Metrics *metrics.Collector
}

func NewHandler(service *payroll.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

var editableFields = []string{
	string(payroll.FieldWorkedHours),
	string(payroll.FieldOvertimeHours),
	string(payroll.FieldShortWeekDays),
	string(payroll.FieldShortTimeHours),
}

type recomputePayload struct {
	Form        payroll.Form `json:"form"`
	ActiveField string       `json:"activeField"`
}

type draftPayload struct {
	Employee   payroll.Employee        `json:"employee"`
	MonthYear  string                  `json:"monthYear" validate:"required"`
	Attendance []payroll.AttendanceDay `json:"attendance"`
	Advances   []payroll.Advance       `json:"advances"`
}

type draftResponse struct {
	Input  payroll.Input  `json:"input"`
	Result payroll.Result `json:"result"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/recompute", h.handleRecompute)
		r.Post("/draft", h.handleDraft)
	})
}

func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload recomputePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Enum("activeField", payload.ActiveField, editableFields, "must be one of workedHours, overtimeHours, shortWeekDays, shortTimeHours")
	if validator.Reject(w, requestID) {
		return
	}

	result := h.Service.Recompute(r.Context(), payload.Form, payroll.ParseField(payload.ActiveField))
	h.Metrics.Count(metrics.CalcPayroll)
	api.Success(w, result, requestID)
}

func (h *Handler) handleDraft(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload draftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Struct(payload)
	if validator.Reject(w, requestID) {
		return
	}

	input, result, err := h.Service.Draft(r.Context(), payload.Employee, payload.MonthYear, payload.Attendance, payload.Advances)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrInvalidMonthYear):
			api.Fail(w, http.StatusBadRequest, "invalid_month_year", "monthYear must be YYYY-MM", requestID)
		case errors.Is(err, payroll.ErrMissingEmployee):
			api.Fail(w, http.StatusBadRequest, "missing_employee", "employee id is required", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "payroll_draft_failed", "failed to prepare payroll draft", requestID)
		}
		return
	}
	h.Metrics.Count(metrics.CalcDraft)
	api.Success(w, draftResponse{Input: input, Result: result}, requestID)
}
