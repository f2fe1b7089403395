package timecodechandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/timecodec"
	"backoffice/internal/platform/lenient"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Metrics *metrics.Collector
}

func NewHandler(collector *metrics.Collector) *Handler {
	return &Handler{Metrics: collector}
}

type decimalResponse struct {
	Value string  `json:"value"`
	Hours float64 `json:"hours"`
}

type clockResponse struct {
	Value float64 `json:"value"`
	Clock string  `json:"clock"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/time", func(r chi.Router) {
		r.Get("/decimal", h.handleDecimal)
		r.Get("/duration", h.handleDuration)
		r.Get("/clock", h.handleClock)
	})
}

// handleDecimal converts "H:MM" (or a plain number) to decimal hours.
func (h *Handler) handleDecimal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	value := r.URL.Query().Get("value")
	validator := shared.NewValidator()
	validator.Required("value", value, "is required")
	if validator.Reject(w, requestID) {
		return
	}
	h.Metrics.Count(metrics.CalcTime)
	api.Success(w, decimalResponse{Value: value, Hours: timecodec.TimeToDecimal(value)}, requestID)
}

// handleDuration reads attendance strings such as "8h 30m".
func (h *Handler) handleDuration(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	value := r.URL.Query().Get("value")
	validator := shared.NewValidator()
	validator.Required("value", value, "is required")
	if validator.Reject(w, requestID) {
		return
	}
	h.Metrics.Count(metrics.CalcTime)
	api.Success(w, decimalResponse{Value: value, Hours: timecodec.ParseDuration(value)}, requestID)
}

// handleClock renders decimal hours as H:MM; unreadable values render as 0:00.
func (h *Handler) handleClock(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	value := r.URL.Query().Get("value")
	validator := shared.NewValidator()
	validator.Required("value", value, "is required")
	if validator.Reject(w, requestID) {
		return
	}
	hours := lenient.Parse(value)
	h.Metrics.Count(metrics.CalcTime)
	api.Success(w, clockResponse{Value: hours, Clock: timecodec.DecimalToTime(hours)}, requestID)
}
