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

type travelPlanStore struct {
	Client *firestore.Client
}

func NewTravelPlanStore(client *firestore.Client) *travelPlanStore {
	return &travelPlanStore{Client: client}
}

func (s *travelPlanStore) plansCollection(uid string) *firestore.CollectionRef {
	return s.Client.Collection("users").Doc(uid).Collection("travel_plans")
}

func (s *travelPlanStore) CreatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error {
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt

	_, err := s.plansCollection(uid).Doc(plan.ID).Create(ctx, plan)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create travel plan", err)
	}
	return nil
}

func (s *travelPlanStore) GetPlan(ctx context.Context, uid, id string) (*models.TravelPlan, error) {
	doc, err := s.plansCollection(uid).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("travel plan not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get travel plan", err)
	}

	var plan models.TravelPlan
	if err := doc.DataTo(&plan); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse travel plan data", err)
	}
	return &plan, nil
}

func (s *travelPlanStore) ListPlans(ctx context.Context, uid string) ([]models.TravelPlan, error) {
	iter := s.plansCollection(uid).Query.OrderBy("departureDate", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []models.TravelPlan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list travel plans", err)
		}
		var plan models.TravelPlan
		if err := doc.DataTo(&plan); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse travel plan data", err)
		}
		out = append(out, plan)
	}
	return out, nil
}

func (s *travelPlanStore) UpdatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error {
	plan.UpdatedAt = time.Now()

	_, err := s.plansCollection(uid).Doc(plan.ID).Set(ctx, plan, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update travel plan", err)
	}
	return nil
}

func (s *travelPlanStore) DeletePlan(ctx context.Context, uid, id string) error {
	_, err := s.plansCollection(uid).Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete travel plan", err)
	}
	return nil
}
