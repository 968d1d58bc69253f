package equipment

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler wires the fleet endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers equipment routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleAdd)
	r.Post("/{unitID}/usage", h.handleLogUsage)
	r.Post("/{unitID}/service", h.handleMarkServiced)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list equipment", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"equipment": views})
}

type addUnitRequest struct {
	Name     string  `json:"name" validate:"required"`
	MaxHours float64 `json:"max_hours" validate:"gt=0"`
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addUnitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	unit, err := h.service.Add(r.Context(), req.Name, req.MaxHours)
	if err != nil {
		h.logger.Error("add unit", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "Unit added", "unit": unit})
}

type usageRequest struct {
	Hours *float64 `json:"hours" validate:"omitempty,gt=0"`
}

func (h *Handler) handleLogUsage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.unitID(w, r)
	if !ok {
		return
	}
	var req usageRequest
	if r.ContentLength > 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
			return
		}
		if err := h.validate.Struct(req); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
			return
		}
	}

	view, err := h.service.LogUsage(r.Context(), id, req.Hours)
	if err != nil {
		h.logger.Error("log usage", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Usage logged", "unit": view})
}

func (h *Handler) handleMarkServiced(w http.ResponseWriter, r *http.Request) {
	id, ok := h.unitID(w, r)
	if !ok {
		return
	}
	view, err := h.service.MarkServiced(r.Context(), id)
	if err != nil {
		h.logger.Error("mark serviced", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Service logged, counter reset", "unit": view})
}

func (h *Handler) unitID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "unitID"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "unit id must be numeric")
		return 0, false
	}
	return id, true
}
