package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"payday/internal/domain/auth"
	"payday/internal/domain/employee"
	"payday/internal/domain/money"
	"payday/internal/domain/payroll"
	"payday/internal/domain/period"
	"payday/internal/platform/artifact"
	"payday/internal/platform/metrics"
	"payday/internal/transport/http/api"
	"payday/internal/transport/http/middleware"
	"payday/internal/transport/http/shared"
)

type Handler struct {
	Payroll   *payroll.Service
	Directory employee.Directory
	Metrics   *metrics.Collector
}

func NewHandler(svc *payroll.Service, directory employee.Directory, collector *metrics.Collector) *Handler {
	return &Handler{Payroll: svc, Directory: directory, Metrics: collector}
}

type runRequest struct {
	Year            int   `json:"year"`
	Month           int   `json:"month"`
	PersistArtifact *bool `json:"persistArtifact"`
}

func (p runRequest) persist() bool {
	return p.PersistArtifact == nil || *p.PersistArtifact
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/compute/{employeeID}", h.handleCompute)
		r.Post("/payslips/{employeeID}", h.handleGenerate)
		r.Get("/payslips/{employeeID}/download", h.handleDownload)
		r.Get("/records/{employeeID}", h.handleRecord)
		r.Post("/run", h.handleRun)
	})
}

// authorizeView checks the actor may see the target employee's payroll data.
// Target lookup failures surface as not found so callers cannot probe ids.
func (h *Handler) authorizeView(w http.ResponseWriter, r *http.Request, employeeID string) bool {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return false
	}
	target, err := h.Directory.Get(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "internal_error", "employee lookup failed", middleware.GetRequestID(r.Context()))
		}
		return false
	}
	if !auth.CanViewEmployee(user, target) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to view this employee", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorizeView(w, r, employeeID) {
		return
	}
	year, month, err := shared.Period(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	figure, err := h.Payroll.ComputePayroll(r.Context(), employeeID, year, month)
	if err != nil {
		h.failCompute(w, r, err)
		return
	}
	api.Success(w, figure, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok || !auth.CanRunPayroll(user) {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr or admin role required", middleware.GetRequestID(r.Context()))
		return
	}
	employeeID := chi.URLParam(r, "employeeID")
	var payload runRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	generated, err := h.Payroll.GeneratePayslip(r.Context(), employeeID, payload.Year, payload.Month, payload.persist())
	if err != nil {
		h.failCompute(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordPayslip()
	}
	api.Created(w, generated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok || !auth.CanRunPayroll(user) {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr or admin role required", middleware.GetRequestID(r.Context()))
		return
	}
	var payload runRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if _, err := period.Resolve(payload.Year, payload.Month, time.Sunday); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "year or month out of range", middleware.GetRequestID(r.Context()))
		return
	}

	summary := h.Payroll.RunForAll(r.Context(), payload.Year, payload.Month, payload.persist())
	if h.Metrics != nil {
		h.Metrics.RecordPayrollRun(summary.Failed)
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorizeView(w, r, employeeID) {
		return
	}
	year, month, err := shared.Period(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Payroll.Record(r.Context(), employeeID, year, month)
	if err != nil {
		h.failCompute(w, r, err)
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorizeView(w, r, employeeID) {
		return
	}
	year, month, err := shared.Period(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Payroll.PayslipBytes(r.Context(), employeeID, year, month)
	if err != nil {
		h.failCompute(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="payslip-%s-%04d-%02d.pdf"`, employeeID, year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// failCompute maps engine errors onto the response envelope without leaking
// storage details.
func (h *Handler) failCompute(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	case errors.Is(err, period.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "year or month out of range", requestID)
	case errors.Is(err, money.ErrInvalidNumericInput):
		api.Fail(w, http.StatusUnprocessableEntity, "invalid_salary_data", "stored salary data is not numeric", requestID)
	case errors.Is(err, payroll.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "record_not_found", "no payroll record for this period", requestID)
	case errors.Is(err, artifact.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "payslip_not_found", "no payslip generated for this period", requestID)
	case errors.Is(err, payroll.ErrArtifactPersist):
		api.Fail(w, http.StatusInternalServerError, "artifact_persist_failed", "payslip could not be stored", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "payroll operation failed", requestID)
	}
}
