package models

import "time"

// PetType stores a pet category and its travel requirements.
type PetType struct {
	ID                  string    `firestore:"id" json:"id"`
	Name                string    `firestore:"name" json:"name"`
	Species             string    `firestore:"species" json:"species"`
	GeneralRequirements string    `firestore:"generalRequirements" json:"generalRequirements"`
	AirlinePolicies     string    `firestore:"airlinePolicies" json:"airlinePolicies"`
	CarrierRequirements string    `firestore:"carrierRequirements" json:"carrierRequirements"`
	CreatedAt           time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `firestore:"updatedAt" json:"updatedAt"`
}
