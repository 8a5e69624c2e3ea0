package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type requirementStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewRequirementStore(client *firestore.Client) *requirementStore {
	return &requirementStore{
		Client:     client,
		Collection: client.Collection("country_pet_requirements"),
	}
}

func (s *requirementStore) CreateRequirement(ctx context.Context, req *models.CountryPetRequirement) error {
	existing, err := s.GetRequirement(ctx, req.CountryID, req.PetTypeID)
	if err == nil && existing != nil {
		return errs.NewAlreadyExistsError("requirement already exists for this country and pet type")
	}

	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt

	_, err = s.Collection.Doc(req.ID).Create(ctx, req)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create requirement", err)
	}
	return nil
}

// GetRequirement resolves the one row for a (country, pet type) pair.
func (s *requirementStore) GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error) {
	iter := s.Collection.Query.
		Where("countryId", "==", countryID).
		Where("petTypeId", "==", petTypeID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errs.NewNotFoundError("no requirement for this country and pet type")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get requirement", err)
	}

	var req models.CountryPetRequirement
	if err := doc.DataTo(&req); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse requirement data", err)
	}
	return &req, nil
}

func (s *requirementStore) ListRequirementsByCountry(ctx context.Context, countryID string) ([]models.CountryPetRequirement, error) {
	iter := s.Collection.Query.Where("countryId", "==", countryID).Documents(ctx)
	defer iter.Stop()

	var out []models.CountryPetRequirement
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list requirements", err)
		}
		var req models.CountryPetRequirement
		if err := doc.DataTo(&req); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse requirement data", err)
		}
		out = append(out, req)
	}
	return out, nil
}

func (s *requirementStore) UpdateRequirement(ctx context.Context, req *models.CountryPetRequirement) error {
	req.UpdatedAt = time.Now()

	_, err := s.Collection.Doc(req.ID).Set(ctx, req, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update requirement", err)
	}
	return nil
}

func (s *requirementStore) DeleteRequirement(ctx context.Context, id string) error {
	_, err := s.Collection.Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete requirement", err)
	}
	return nil
}
