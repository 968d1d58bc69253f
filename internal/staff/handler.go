package staff

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler wires the roster endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers staff routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleHire)
	r.Delete("/{staffID}", h.handleRemove)
	r.Post("/{staffID}/commission", h.handleCommission)
	r.Post("/payroll", h.handlePayroll)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	roster, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list staff", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"staff": roster})
}

type hireRequest struct {
	Name       string  `json:"name" validate:"required"`
	Role       string  `json:"role" validate:"required"`
	BaseSalary float64 `json:"base_salary" validate:"gt=0"`
}

func (h *Handler) handleHire(w http.ResponseWriter, r *http.Request) {
	var req hireRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	member, err := h.service.Hire(r.Context(), req.Name, req.Role, req.BaseSalary)
	if err != nil {
		h.logger.Error("hire staff", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "Staff member hired", "staff": member})
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}
	if err := h.service.Remove(r.Context(), id); err != nil {
		h.logger.Error("remove staff", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Staff member removed"})
}

type commissionRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

func (h *Handler) handleCommission(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}
	var req commissionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if err := h.service.CreditCommission(r.Context(), id, req.Amount); err != nil {
		h.logger.Error("credit commission", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Commission credited"})
}

func (h *Handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.service.ExecutePayroll(r.Context())
	if err != nil {
		h.logger.Error("execute payroll", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, receipt)
}

func (h *Handler) staffID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "staff id must be numeric")
		return 0, false
	}
	return id, true
}
