package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type countryTStore interface {
	CreateCountry(ctx context.Context, country *models.Country) error
	GetCountry(ctx context.Context, id string) (*models.Country, error)
	ListCountries(ctx context.Context) ([]models.Country, error)
	SearchCountries(ctx context.Context, term string) ([]models.Country, error)
	UpdateCountry(ctx context.Context, country *models.Country) error
	DeleteCountry(ctx context.Context, id string) error
}

type petTypeTStore interface {
	CreatePetType(ctx context.Context, petType *models.PetType) error
	GetPetType(ctx context.Context, id string) (*models.PetType, error)
	ListPetTypes(ctx context.Context) ([]models.PetType, error)
	SearchPetTypes(ctx context.Context, term string) ([]models.PetType, error)
	UpdatePetType(ctx context.Context, petType *models.PetType) error
	DeletePetType(ctx context.Context, id string) error
}

type requirementTStore interface {
	CreateRequirement(ctx context.Context, req *models.CountryPetRequirement) error
	GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error)
	ListRequirementsByCountry(ctx context.Context, countryID string) ([]models.CountryPetRequirement, error)
	UpdateRequirement(ctx context.Context, req *models.CountryPetRequirement) error
	DeleteRequirement(ctx context.Context, id string) error
}

// travelService manages the reference catalogue the assistant draws on:
// countries, pet types, and the per-pair requirement rows.
type travelService struct {
	countries    countryTStore
	petTypes     petTypeTStore
	requirements requirementTStore
}

func NewTravelService(countries countryTStore, petTypes petTypeTStore, requirements requirementTStore) *travelService {
	return &travelService{
		countries:    countries,
		petTypes:     petTypes,
		requirements: requirements,
	}
}

func (s *travelService) CreateCountry(ctx context.Context, country *models.Country) error {
	if country.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if country.Code == "" {
		return errs.NewValidationError("code is required")
	}
	if country.ID == "" {
		country.ID = uuid.NewString()
	}
	return s.countries.CreateCountry(ctx, country)
}

func (s *travelService) GetCountry(ctx context.Context, id string) (*models.Country, error) {
	return s.countries.GetCountry(ctx, id)
}

func (s *travelService) ListCountries(ctx context.Context, search string) ([]models.Country, error) {
	if search != "" {
		return s.countries.SearchCountries(ctx, search)
	}
	return s.countries.ListCountries(ctx)
}

func (s *travelService) UpdateCountry(ctx context.Context, country *models.Country) error {
	if country.ID == "" {
		return errs.NewValidationError("id is required")
	}
	return s.countries.UpdateCountry(ctx, country)
}

func (s *travelService) DeleteCountry(ctx context.Context, id string) error {
	return s.countries.DeleteCountry(ctx, id)
}

func (s *travelService) CreatePetType(ctx context.Context, petType *models.PetType) error {
	if petType.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if petType.ID == "" {
		petType.ID = uuid.NewString()
	}
	return s.petTypes.CreatePetType(ctx, petType)
}

func (s *travelService) GetPetType(ctx context.Context, id string) (*models.PetType, error) {
	return s.petTypes.GetPetType(ctx, id)
}

func (s *travelService) ListPetTypes(ctx context.Context, search string) ([]models.PetType, error) {
	if search != "" {
		return s.petTypes.SearchPetTypes(ctx, search)
	}
	return s.petTypes.ListPetTypes(ctx)
}

func (s *travelService) UpdatePetType(ctx context.Context, petType *models.PetType) error {
	if petType.ID == "" {
		return errs.NewValidationError("id is required")
	}
	return s.petTypes.UpdatePetType(ctx, petType)
}

func (s *travelService) DeletePetType(ctx context.Context, id string) error {
	return s.petTypes.DeletePetType(ctx, id)
}

// CreateRequirement links a country and pet type. Both sides must exist
// before the row is created.
func (s *travelService) CreateRequirement(ctx context.Context, req *models.CountryPetRequirement) error {
	if req.CountryID == "" {
		return errs.NewValidationError("countryId is required")
	}
	if req.PetTypeID == "" {
		return errs.NewValidationError("petTypeId is required")
	}
	if _, err := s.countries.GetCountry(ctx, req.CountryID); err != nil {
		return err
	}
	if _, err := s.petTypes.GetPetType(ctx, req.PetTypeID); err != nil {
		return err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	return s.requirements.CreateRequirement(ctx, req)
}

func (s *travelService) GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error) {
	return s.requirements.GetRequirement(ctx, countryID, petTypeID)
}

func (s *travelService) ListRequirementsByCountry(ctx context.Context, countryID string) ([]models.CountryPetRequirement, error) {
	return s.requirements.ListRequirementsByCountry(ctx, countryID)
}

func (s *travelService) UpdateRequirement(ctx context.Context, req *models.CountryPetRequirement) error {
	if req.ID == "" {
		return errs.NewValidationError("id is required")
	}
	return s.requirements.UpdateRequirement(ctx, req)
}

func (s *travelService) DeleteRequirement(ctx context.Context, id string) error {
	return s.requirements.DeleteRequirement(ctx, id)
}
