package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/internal/response"
)

type TravelService interface {
	CreateCountry(ctx context.Context, country *models.Country) error
	GetCountry(ctx context.Context, id string) (*models.Country, error)
	ListCountries(ctx context.Context, search string) ([]models.Country, error)
	UpdateCountry(ctx context.Context, country *models.Country) error
	DeleteCountry(ctx context.Context, id string) error

	CreatePetType(ctx context.Context, petType *models.PetType) error
	GetPetType(ctx context.Context, id string) (*models.PetType, error)
	ListPetTypes(ctx context.Context, search string) ([]models.PetType, error)
	UpdatePetType(ctx context.Context, petType *models.PetType) error
	DeletePetType(ctx context.Context, id string) error

	CreateRequirement(ctx context.Context, req *models.CountryPetRequirement) error
	GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error)
	ListRequirementsByCountry(ctx context.Context, countryID string) ([]models.CountryPetRequirement, error)
	UpdateRequirement(ctx context.Context, req *models.CountryPetRequirement) error
	DeleteRequirement(ctx context.Context, id string) error
}

// travelHandlers serves the reference catalogue: countries, pet types, and
// country x pet-type requirement rows.
type travelHandlers struct {
	ResponseHandler response.ResponseHandler
	TravelSvc       TravelService
}

func NewTravelHandlers(deps *Deps) *travelHandlers {
	return &travelHandlers{
		ResponseHandler: deps.ResponseHandler,
		TravelSvc:       deps.TravelSvc,
	}
}

func (h *travelHandlers) CountryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCountries)
	r.Post("/", h.CreateCountry)
	r.Get("/{id}", h.GetCountry)
	r.Put("/{id}", h.UpdateCountry)
	r.Delete("/{id}", h.DeleteCountry)
	r.Get("/{id}/requirements", h.ListCountryRequirements)
	return r
}

func (h *travelHandlers) PetTypeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPetTypes)
	r.Post("/", h.CreatePetType)
	r.Get("/{id}", h.GetPetType)
	r.Put("/{id}", h.UpdatePetType)
	r.Delete("/{id}", h.DeletePetType)
	return r
}

func (h *travelHandlers) RequirementRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateRequirement)
	r.Get("/", h.GetRequirement)
	r.Put("/{id}", h.UpdateRequirement)
	r.Delete("/{id}", h.DeleteRequirement)
	return r
}

func (h *travelHandlers) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.TravelSvc.ListCountries(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, countries)
}

func (h *travelHandlers) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var country models.Country
	if err := json.NewDecoder(r.Body).Decode(&country); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.TravelSvc.CreateCountry(r.Context(), &country); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, country)
}

func (h *travelHandlers) GetCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.TravelSvc.GetCountry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, country)
}

func (h *travelHandlers) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	var country models.Country
	if err := json.NewDecoder(r.Body).Decode(&country); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	country.ID = chi.URLParam(r, "id")
	if err := h.TravelSvc.UpdateCountry(r.Context(), &country); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, country)
}

func (h *travelHandlers) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	if err := h.TravelSvc.DeleteCountry(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *travelHandlers) ListCountryRequirements(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.TravelSvc.ListRequirementsByCountry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, reqs)
}

func (h *travelHandlers) ListPetTypes(w http.ResponseWriter, r *http.Request) {
	petTypes, err := h.TravelSvc.ListPetTypes(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, petTypes)
}

func (h *travelHandlers) CreatePetType(w http.ResponseWriter, r *http.Request) {
	var petType models.PetType
	if err := json.NewDecoder(r.Body).Decode(&petType); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.TravelSvc.CreatePetType(r.Context(), &petType); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, petType)
}

func (h *travelHandlers) GetPetType(w http.ResponseWriter, r *http.Request) {
	petType, err := h.TravelSvc.GetPetType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, petType)
}

func (h *travelHandlers) UpdatePetType(w http.ResponseWriter, r *http.Request) {
	var petType models.PetType
	if err := json.NewDecoder(r.Body).Decode(&petType); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	petType.ID = chi.URLParam(r, "id")
	if err := h.TravelSvc.UpdatePetType(r.Context(), &petType); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, petType)
}

func (h *travelHandlers) DeletePetType(w http.ResponseWriter, r *http.Request) {
	if err := h.TravelSvc.DeletePetType(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *travelHandlers) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	var req models.CountryPetRequirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if err := h.TravelSvc.CreateRequirement(r.Context(), &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, req)
}

// GetRequirement resolves the row for ?countryId=&petTypeId=.
func (h *travelHandlers) GetRequirement(w http.ResponseWriter, r *http.Request) {
	countryID := r.URL.Query().Get("countryId")
	petTypeID := r.URL.Query().Get("petTypeId")
	if countryID == "" || petTypeID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("countryId and petTypeId are required"))
		return
	}

	req, err := h.TravelSvc.GetRequirement(r.Context(), countryID, petTypeID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, req)
}

func (h *travelHandlers) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	var req models.CountryPetRequirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	req.ID = chi.URLParam(r, "id")
	if err := h.TravelSvc.UpdateRequirement(r.Context(), &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, req)
}

func (h *travelHandlers) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
	if err := h.TravelSvc.DeleteRequirement(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
