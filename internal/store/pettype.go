package store

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type petTypeStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewPetTypeStore(client *firestore.Client) *petTypeStore {
	return &petTypeStore{
		Client:     client,
		Collection: client.Collection("pet_types"),
	}
}

func (s *petTypeStore) CreatePetType(ctx context.Context, petType *models.PetType) error {
	petType.CreatedAt = time.Now()
	petType.UpdatedAt = petType.CreatedAt

	_, err := s.Collection.Doc(petType.ID).Create(ctx, petType)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError("pet type already exists")
	}
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create pet type", err)
	}
	return nil
}

func (s *petTypeStore) GetPetType(ctx context.Context, id string) (*models.PetType, error) {
	doc, err := s.Collection.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("pet type not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get pet type", err)
	}

	var petType models.PetType
	if err := doc.DataTo(&petType); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse pet type data", err)
	}
	return &petType, nil
}

func (s *petTypeStore) ListPetTypes(ctx context.Context) ([]models.PetType, error) {
	iter := s.Collection.Query.OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []models.PetType
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list pet types", err)
		}
		var petType models.PetType
		if err := doc.DataTo(&petType); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse pet type data", err)
		}
		out = append(out, petType)
	}
	return out, nil
}

func (s *petTypeStore) SearchPetTypes(ctx context.Context, term string) ([]models.PetType, error) {
	all, err := s.ListPetTypes(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	var out []models.PetType
	for _, petType := range all {
		if strings.Contains(strings.ToLower(petType.Name), term) ||
			strings.Contains(strings.ToLower(petType.Species), term) {
			out = append(out, petType)
		}
	}
	return out, nil
}

func (s *petTypeStore) UpdatePetType(ctx context.Context, petType *models.PetType) error {
	petType.UpdatedAt = time.Now()

	_, err := s.Collection.Doc(petType.ID).Set(ctx, petType, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update pet type", err)
	}
	return nil
}

func (s *petTypeStore) DeletePetType(ctx context.Context, id string) error {
	_, err := s.Collection.Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete pet type", err)
	}
	return nil
}
