package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type petStore struct {
	Client *firestore.Client
}

func NewPetStore(client *firestore.Client) *petStore {
	return &petStore{Client: client}
}

func (s *petStore) petsCollection(uid string) *firestore.CollectionRef {
	return s.Client.Collection("users").Doc(uid).Collection("pets")
}

func (s *petStore) CreatePet(ctx context.Context, uid string, pet *models.Pet) error {
	pet.CreatedAt = time.Now()
	pet.UpdatedAt = pet.CreatedAt

	_, err := s.petsCollection(uid).Doc(pet.ID).Create(ctx, pet)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create pet", err)
	}
	return nil
}

func (s *petStore) GetPet(ctx context.Context, uid, id string) (*models.Pet, error) {
	doc, err := s.petsCollection(uid).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("pet not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get pet", err)
	}

	var pet models.Pet
	if err := doc.DataTo(&pet); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse pet data", err)
	}
	return &pet, nil
}

func (s *petStore) ListPets(ctx context.Context, uid string) ([]models.Pet, error) {
	iter := s.petsCollection(uid).Query.OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []models.Pet
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list pets", err)
		}
		var pet models.Pet
		if err := doc.DataTo(&pet); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse pet data", err)
		}
		out = append(out, pet)
	}
	return out, nil
}

func (s *petStore) UpdatePet(ctx context.Context, uid string, pet *models.Pet) error {
	pet.UpdatedAt = time.Now()

	_, err := s.petsCollection(uid).Doc(pet.ID).Set(ctx, pet, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update pet", err)
	}
	return nil
}

func (s *petStore) DeletePet(ctx context.Context, uid, id string) error {
	_, err := s.petsCollection(uid).Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete pet", err)
	}
	return nil
}
