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

type PetService interface {
	CreatePet(ctx context.Context, uid string, pet *models.Pet) error
	GetPet(ctx context.Context, uid, id string) (*models.Pet, error)
	ListPets(ctx context.Context, uid string) ([]models.Pet, error)
	UpdatePet(ctx context.Context, uid string, pet *models.Pet) error
	DeletePet(ctx context.Context, uid, id string) error
}

type petHandlers struct {
	ResponseHandler response.ResponseHandler
	PetSvc          PetService
}

func NewPetHandlers(deps *Deps) *petHandlers {
	return &petHandlers{
		ResponseHandler: deps.ResponseHandler,
		PetSvc:          deps.PetSvc,
	}
}

func (h *petHandlers) PetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPets)
	r.Post("/", h.CreatePet)
	r.Get("/{id}", h.GetPet)
	r.Put("/{id}", h.UpdatePet)
	r.Delete("/{id}", h.DeletePet)
	return r
}

func (h *petHandlers) ListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.PetSvc.ListPets(r.Context(), middleware.UID(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, pets)
}

func (h *petHandlers) CreatePet(w http.ResponseWriter, r *http.Request) {
	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.PetSvc.CreatePet(r.Context(), middleware.UID(r.Context()), &pet); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, pet)
}

func (h *petHandlers) GetPet(w http.ResponseWriter, r *http.Request) {
	pet, err := h.PetSvc.GetPet(r.Context(), middleware.UID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, pet)
}

func (h *petHandlers) UpdatePet(w http.ResponseWriter, r *http.Request) {
	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	pet.ID = chi.URLParam(r, "id")
	if err := h.PetSvc.UpdatePet(r.Context(), middleware.UID(r.Context()), &pet); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, pet)
}

func (h *petHandlers) DeletePet(w http.ResponseWriter, r *http.Request) {
	if err := h.PetSvc.DeletePet(r.Context(), middleware.UID(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
