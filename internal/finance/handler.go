package finance

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler wires the finance endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers finance routes on the provided router. The AI
// narrative is rate limited per IP; it is the expensive endpoint here.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleTracker)
	r.Group(func(gr chi.Router) {
		gr.Use(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		gr.Get("/analysis", h.handleAnalysis)
	})
}

func (h *Handler) handleTracker(w http.ResponseWriter, r *http.Request) {
	tracker, err := h.service.Tracker(r.Context())
	if err != nil {
		h.logger.Error("load finance tracker", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tracker)
}

func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.Analysis(r.Context())
	if err != nil {
		h.logger.Error("finance analysis", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"analysis": text})
}

type expenseRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

// HandleAddExpense books an operational expense straight into the ledger.
// Mounted at the top level as POST /api/expenses.
func (h *Handler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.RecordExpense(r.Context(), req.Category, req.Amount); err != nil {
		h.logger.Error("record expense", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "Expense recorded to ledger"})
}
