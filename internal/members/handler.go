package members

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Handler wires the member registry endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers member routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleRegister)
	r.Delete("/{memberID}", h.handleRemove)
	r.Post("/{memberID}/attendance", h.handleAttendance)
	r.Post("/{memberID}/renew", h.handleRenew)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list members", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"members": views})
}

type registerRequest struct {
	Name       string `json:"name" validate:"required"`
	Mobile     string `json:"mobile" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Weight     string `json:"weight"`
	Height     string `json:"height"`
	Address    string `json:"address"`
	PlanName   string `json:"plan_name"`
	AmountPaid string `json:"amount_paid"`
	SubExpiry  string `json:"sub_expiry"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	member, err := h.service.Register(r.Context(), RegisterInput{
		Name:       req.Name,
		Mobile:     req.Mobile,
		Email:      req.Email,
		Weight:     req.Weight,
		Height:     req.Height,
		Address:    req.Address,
		PlanName:   req.PlanName,
		AmountPaid: req.AmountPaid,
		SubExpiry:  req.SubExpiry,
	})
	if err != nil {
		h.logger.Error("register member", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "Onboarding successful", "member": member})
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberID(w, r)
	if !ok {
		return
	}
	if err := h.service.Remove(r.Context(), id); err != nil {
		h.respondServiceError(w, "remove member", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Member removed from registry"})
}

type attendanceRequest struct {
	Weight *float64 `json:"weight"`
}

func (h *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberID(w, r)
	if !ok {
		return
	}
	var req attendanceRequest
	if r.ContentLength > 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid JSON body")
			return
		}
	}
	if err := h.service.MarkAttendance(r.Context(), id, req.Weight); err != nil {
		h.respondServiceError(w, "mark attendance", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Check-in logged"})
}

func (h *Handler) handleRenew(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberID(w, r)
	if !ok {
		return
	}
	receipt, err := h.service.Renew(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "renew member", err)
		return
	}
	httpx.JSON(w, http.StatusOK, receipt)
}

// HandleTriggerRetention enqueues the retention nudge run. Mounted at
// the top level as POST /api/retention/trigger.
func (h *Handler) HandleTriggerRetention(w http.ResponseWriter, r *http.Request) {
	if err := h.service.TriggerRetention(r.Context()); err != nil {
		h.logger.Error("trigger retention", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusAccepted, map[string]string{"message": "Retention nudges queued"})
}

func (h *Handler) memberID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "member id must be numeric")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	h.logger.Error(op, slog.Any("error", err))
	httpx.RespondError(w, err)
}
