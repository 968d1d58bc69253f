package diet

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler wires the diet endpoint.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

type planRequest struct {
	MemberName   string `json:"member_name" validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
}

// HandleGeneratePlan drafts a diet plan. Mounted as POST
// /api/diet/generate behind a tighter rate limit.
func (h *Handler) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	plan := h.service.GeneratePlan(r.Context(), req.MemberName, req.Requirements)
	httpx.JSON(w, http.StatusOK, map[string]string{"plan": plan})
}
