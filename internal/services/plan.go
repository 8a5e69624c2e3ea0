package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/pkg/logger"
)

type planPStore interface {
	CreatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error
	GetPlan(ctx context.Context, uid, id string) (*models.TravelPlan, error)
	ListPlans(ctx context.Context, uid string) ([]models.TravelPlan, error)
	UpdatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error
	DeletePlan(ctx context.Context, uid, id string) error
}

type planPetReader interface {
	GetPet(ctx context.Context, uid, id string) (*models.Pet, error)
}

type planRequirementReader interface {
	GetRequirement(ctx context.Context, countryID, petTypeID string) (*models.CountryPetRequirement, error)
	ListRequirementsByCountry(ctx context.Context, countryID string) ([]models.CountryPetRequirement, error)
}

var planStatuses = map[string]bool{
	"planning":    true,
	"ready":       true,
	"in_progress": true,
	"completed":   true,
}

var requirementStatuses = map[string]bool{
	models.RequirementNotStarted:    true,
	models.RequirementInProgress:    true,
	models.RequirementCompleted:     true,
	models.RequirementNotApplicable: true,
}

// planService manages travel plans and their requirement checklists. A new
// plan is seeded with one checklist item per requirement row the destination
// country has for the pet's type.
type planService struct {
	store        planPStore
	pets         planPetReader
	requirements planRequirementReader
	clockNow     func() time.Time
}

func NewPlanService(store planPStore, pets planPetReader, requirements planRequirementReader) *planService {
	return &planService{
		store:        store,
		pets:         pets,
		requirements: requirements,
		clockNow:     time.Now,
	}
}

func (s *planService) CreatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error {
	if plan.Name == "" {
		return errs.NewValidationError("name is required")
	}
	if plan.PetID == "" {
		return errs.NewValidationError("petId is required")
	}
	if plan.DestinationCountryID == "" {
		return errs.NewValidationError("destinationCountryId is required")
	}
	if plan.DepartureDate == "" {
		return errs.NewValidationError("departureDate is required")
	}

	pet, err := s.pets.GetPet(ctx, uid, plan.PetID)
	if err != nil {
		return err
	}

	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.Status == "" {
		plan.Status = "planning"
	} else if !planStatuses[plan.Status] {
		return errs.NewValidationError("invalid plan status")
	}

	plan.Requirements = s.seedChecklist(ctx, plan.DestinationCountryID, pet.PetTypeID)

	return s.store.CreatePlan(ctx, uid, plan)
}

// seedChecklist builds the initial requirement checklist from the destination
// country's requirement rows. A failed lookup seeds an empty checklist.
func (s *planService) seedChecklist(ctx context.Context, countryID, petTypeID string) []models.TravelRequirement {
	log := logger.FromContext(ctx)

	rows, err := s.requirements.ListRequirementsByCountry(ctx, countryID)
	if err != nil {
		log.Warn("requirement seeding failed", "country_id", countryID, "error", err)
		return nil
	}

	now := s.clockNow()
	var checklist []models.TravelRequirement
	for _, row := range rows {
		if row.PetTypeID != petTypeID {
			continue
		}
		checklist = append(checklist, models.TravelRequirement{
			ID:            uuid.NewString(),
			RequirementID: row.ID,
			Description:   row.SpecificRequirements,
			Status:        models.RequirementNotStarted,
			UpdatedAt:     now,
		})
	}
	return checklist
}

func (s *planService) GetPlan(ctx context.Context, uid, id string) (*models.TravelPlan, error) {
	return s.store.GetPlan(ctx, uid, id)
}

func (s *planService) ListPlans(ctx context.Context, uid string) ([]models.TravelPlan, error) {
	return s.store.ListPlans(ctx, uid)
}

func (s *planService) UpdatePlan(ctx context.Context, uid string, plan *models.TravelPlan) error {
	if plan.ID == "" {
		return errs.NewValidationError("id is required")
	}
	if plan.Status != "" && !planStatuses[plan.Status] {
		return errs.NewValidationError("invalid plan status")
	}
	return s.store.UpdatePlan(ctx, uid, plan)
}

func (s *planService) DeletePlan(ctx context.Context, uid, id string) error {
	return s.store.DeletePlan(ctx, uid, id)
}

// UpdateRequirementStatus moves one checklist item to a new status.
// Completing an item stamps the completion date.
func (s *planService) UpdateRequirementStatus(ctx context.Context, uid, planID, requirementID, status, notes string) (*models.TravelPlan, error) {
	if !requirementStatuses[status] {
		return nil, errs.NewValidationError("invalid requirement status")
	}

	plan, err := s.store.GetPlan(ctx, uid, planID)
	if err != nil {
		return nil, err
	}

	found := false
	now := s.clockNow()
	for i := range plan.Requirements {
		if plan.Requirements[i].ID != requirementID {
			continue
		}
		plan.Requirements[i].Status = status
		plan.Requirements[i].Notes = notes
		plan.Requirements[i].UpdatedAt = now
		if status == models.RequirementCompleted {
			plan.Requirements[i].CompletionDate = now.Format("2006-01-02")
		} else {
			plan.Requirements[i].CompletionDate = ""
		}
		found = true
		break
	}
	if !found {
		return nil, errs.NewNotFoundError("requirement not found on this plan")
	}

	if err := s.store.UpdatePlan(ctx, uid, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RequirementsStatus summarizes checklist completion for a plan.
func (s *planService) RequirementsStatus(ctx context.Context, uid, planID string) (*models.RequirementsStatus, error) {
	plan, err := s.store.GetPlan(ctx, uid, planID)
	if err != nil {
		return nil, err
	}

	status := &models.RequirementsStatus{Total: len(plan.Requirements)}
	for _, req := range plan.Requirements {
		switch req.Status {
		case models.RequirementCompleted:
			status.Completed++
		case models.RequirementInProgress:
			status.InProgress++
		case models.RequirementNotApplicable:
			status.NotApplicable++
		default:
			status.NotStarted++
		}
	}

	applicable := status.Total - status.NotApplicable
	if applicable > 0 {
		status.CompletionPercentage = float64(status.Completed) / float64(applicable) * 100
	}
	return status, nil
}
