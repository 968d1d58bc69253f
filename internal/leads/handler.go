package leads

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler wires the marketing endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// HandleList serves the lead inbox. Mounted as GET /api/leads.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list leads", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"leads": leads})
}

type campaignRequest struct {
	Area string `json:"area" validate:"required"`
}

// HandleLaunchCampaign starts a campaign. Mounted as POST /api/campaigns.
func (h *Handler) HandleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	result, err := h.service.LaunchCampaign(r.Context(), req.Area)
	if err != nil {
		h.logger.Error("launch campaign", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, result)
}

type adRequest struct {
	Area     string `json:"area" validate:"required"`
	Platform string `json:"platform" validate:"required"`
	Goal     string `json:"goal" validate:"required"`
}

// HandleGenerateAd drafts ad copy. Mounted as POST /api/ads/generate
// behind a tighter rate limit.
func (h *Handler) HandleGenerateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	copyText := h.service.GenerateAd(r.Context(), req.Area, req.Platform, req.Goal)
	httpx.JSON(w, http.StatusOK, map[string]string{"ad": copyText})
}
