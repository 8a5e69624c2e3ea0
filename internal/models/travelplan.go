package models

import "time"

// Travel requirement checklist statuses.
const (
	RequirementNotStarted    = "not_started"
	RequirementInProgress    = "in_progress"
	RequirementCompleted     = "completed"
	RequirementNotApplicable = "not_applicable"
)

// TravelPlan is a user's planned trip with one pet. Stored under the owner's
// document; the requirement checklist is embedded.
type TravelPlan struct {
	ID                   string              `firestore:"id" json:"id"`
	Name                 string              `firestore:"name" json:"name"`
	PetID                string              `firestore:"petId" json:"petId"`
	OriginCountryID      string              `firestore:"originCountryId" json:"originCountryId"`
	DestinationCountryID string              `firestore:"destinationCountryId" json:"destinationCountryId"`
	DepartureDate        string              `firestore:"departureDate" json:"departureDate"` // YYYY-MM-DD
	ReturnDate           string              `firestore:"returnDate,omitempty" json:"returnDate,omitempty"`
	Status               string              `firestore:"status" json:"status"` // "planning","ready","in_progress","completed"
	Notes                string              `firestore:"notes,omitempty" json:"notes,omitempty"`
	Requirements         []TravelRequirement `firestore:"requirements,omitempty" json:"requirements,omitempty"`
	CreatedAt            time.Time           `firestore:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time           `firestore:"updatedAt" json:"updatedAt"`
}

// TravelRequirement is one checklist item on a travel plan, seeded from the
// destination country's requirement rows.
type TravelRequirement struct {
	ID             string    `firestore:"id" json:"id"`
	RequirementID  string    `firestore:"requirementId" json:"requirementId"`
	Description    string    `firestore:"description" json:"description"`
	Status         string    `firestore:"status" json:"status"`
	CompletionDate string    `firestore:"completionDate,omitempty" json:"completionDate,omitempty"`
	Notes          string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	UpdatedAt      time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// RequirementsStatus summarizes checklist completion for a plan.
type RequirementsStatus struct {
	Total                int     `json:"total"`
	Completed            int     `json:"completed"`
	InProgress           int     `json:"in_progress"`
	NotStarted           int     `json:"not_started"`
	NotApplicable        int     `json:"not_applicable"`
	CompletionPercentage float64 `json:"completion_percentage"`
}
