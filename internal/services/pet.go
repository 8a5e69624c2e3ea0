package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type petPStore interface {
	CreatePet(ctx context.Context, uid string, pet *models.Pet) error
	GetPet(ctx context.Context, uid, id string) (*models.Pet, error)
	ListPets(ctx context.Context, uid string) ([]models.Pet, error)
	UpdatePet(ctx context.Context, uid string, pet *models.Pet) error
	DeletePet(ctx context.Context, uid, id string) error
}

type petTypeChecker interface {
	GetPetType(ctx context.Context, id string) (*models.PetType, error)
}

type petService struct {
	store    petPStore
	petTypes petTypeChecker
}

func NewPetService(store petPStore, petTypes petTypeChecker) *petService {
	return &petService{
		store:    store,
		petTypes: petTypes,
	}
}

func (s *petService) CreatePet(ctx context.Context, uid string, pet *models.Pet) error {
	if pet.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if pet.PetTypeID == "" {
		return errs.NewValidationError("petTypeId is required")
	}
	if _, err := s.petTypes.GetPetType(ctx, pet.PetTypeID); err != nil {
		return err
	}
	if pet.ID == "" {
		pet.ID = uuid.NewString()
	}
	return s.store.CreatePet(ctx, uid, pet)
}

func (s *petService) GetPet(ctx context.Context, uid, id string) (*models.Pet, error) {
	return s.store.GetPet(ctx, uid, id)
}

func (s *petService) ListPets(ctx context.Context, uid string) ([]models.Pet, error) {
	return s.store.ListPets(ctx, uid)
}

func (s *petService) UpdatePet(ctx context.Context, uid string, pet *models.Pet) error {
	if pet.ID == "" {
		return errs.NewValidationError("id is required")
	}
	if pet.PetTypeID != "" {
		if _, err := s.petTypes.GetPetType(ctx, pet.PetTypeID); err != nil {
			return err
		}
	}
	return s.store.UpdatePet(ctx, uid, pet)
}

func (s *petService) DeletePet(ctx context.Context, uid, id string) error {
	return s.store.DeletePet(ctx, uid, id)
}
