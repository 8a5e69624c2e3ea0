package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/middleware"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/internal/response"
)

type PlanService interface {
	CreatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error
	GetPlan(ctx context.Context, uid, id string) (*models.TravelPlan, error)
	ListPlans(ctx context.Context, uid string) ([]models.TravelPlan, error)
	UpdatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error
	DeletePlan(ctx context.Context, uid, id string) error
	UpdateRequirementStatus(ctx context.Context, uid, planID, requirementID, status, notes string) (*models.TravelPlan, error)
	RequirementsStatus(ctx context.Context, uid, planID string) (*models.RequirementsStatus, error)
}

type planHandlers struct {
	ResponseHandler response.ResponseHandler
	PlanSvc         PlanService
}

func NewPlanHandlers(deps *Deps) *planHandlers {
	return &planHandlers{
		ResponseHandler: deps.ResponseHandler,
		PlanSvc:         deps.PlanSvc,
	}
}

func (h *planHandlers) PlanRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPlans)
	r.Post("/", h.CreatePlan)
	r.Get("/{id}", h.GetPlan)
	r.Put("/{id}", h.UpdatePlan)
	r.Delete("/{id}", h.DeletePlan)
	r.Get("/{id}/requirements/status", h.RequirementsStatus)
	r.Patch("/{id}/requirements/{requirementId}", h.UpdateRequirementStatus)
	return r
}

func (h *planHandlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.PlanSvc.ListPlans(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, plans)
}

func (h *planHandlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.TravelPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.PlanSvc.CreatePlan(r.Context(), middleware.UID(r.Context()), &plan); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, plan)
}

func (h *planHandlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.PlanSvc.GetPlan(r.Context(), middleware.UID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, plan)
}

func (h *planHandlers) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.TravelPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	plan.ID = chi.URLParam(r, "id")
	if err := h.PlanSvc.UpdatePlan(r.Context(), middleware.UID(r.Context()), &plan); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, plan)
}

func (h *planHandlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.PlanSvc.DeletePlan(r.Context(), middleware.UID(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *planHandlers) UpdateRequirementStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	plan, err := h.PlanSvc.UpdateRequirementStatus(r.Context(), middleware.UID(r.Context()),
		chi.URLParam(r, "id"), chi.URLParam(r, "requirementId"), body.Status, body.Notes)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, plan)
}

func (h *planHandlers) RequirementsStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.PlanSvc.RequirementsStatus(r.Context(), middleware.UID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, status)
}
