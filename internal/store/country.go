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

type countryStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewCountryStore(client *firestore.Client) *countryStore {
	return &countryStore{
		Client:     client,
		Collection: client.Collection("countries"),
	}
}

func (s *countryStore) CreateCountry(ctx context.Context, country *models.Country) error {
	country.CreatedAt = time.Now()
	country.UpdatedAt = country.CreatedAt

	_, err := s.Collection.Doc(country.ID).Create(ctx, country)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError("country already exists")
	}
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create country", err)
	}
	return nil
}

func (s *countryStore) GetCountry(ctx context.Context, id string) (*models.Country, error) {
	doc, err := s.Collection.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("country not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get country", err)
	}

	var country models.Country
	if err := doc.DataTo(&country); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse country data", err)
	}
	return &country, nil
}

func (s *countryStore) ListCountries(ctx context.Context) ([]models.Country, error) {
	iter := s.Collection.Query.OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []models.Country
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list countries", err)
		}
		var country models.Country
		if err := doc.DataTo(&country); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse country data", err)
		}
		out = append(out, country)
	}
	return out, nil
}

// SearchCountries matches name or code, case-insensitive. Firestore has no
// contains query, so the filter runs client-side over the full collection.
func (s *countryStore) SearchCountries(ctx context.Context, term string) ([]models.Country, error) {
	all, err := s.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	var out []models.Country
	for _, country := range all {
		if strings.Contains(strings.ToLower(country.Name), term) ||
			strings.Contains(strings.ToLower(country.Code), term) {
			out = append(out, country)
		}
	}
	return out, nil
}

func (s *countryStore) UpdateCountry(ctx context.Context, country *models.Country) error {
	country.UpdatedAt = time.Now()

	_, err := s.Collection.Doc(country.ID).Set(ctx, country, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update country", err)
	}
	return nil
}

func (s *countryStore) DeleteCountry(ctx context.Context, id string) error {
	_, err := s.Collection.Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete country", err)
	}
	return nil
}
