package analytics

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler exposes trend reports over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers analytics routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{memberID}", h.handleReport)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "member id must be numeric")
		return
	}
	horizon, err := ParseHorizon(r.URL.Query().Get("horizon"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "horizon must be one of 6m, 1y, all")
		return
	}

	report, err := h.service.Report(r.Context(), memberID, horizon)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "member not found")
			return
		}
		h.logger.Error("trend report", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}
