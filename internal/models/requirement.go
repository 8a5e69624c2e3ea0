package models

import "time"

// CountryPetRequirement stores the requirements for one pet type entering one
// country. One row per (country, pet type) pair.
type CountryPetRequirement struct {
	ID                   string    `firestore:"id" json:"id"`
	CountryID            string    `firestore:"countryId" json:"countryId"`
	PetTypeID            string    `firestore:"petTypeId" json:"petTypeId"`
	SpecificRequirements string    `firestore:"specificRequirements" json:"specificRequirements"`
	AdditionalDocuments  string    `firestore:"additionalDocuments" json:"additionalDocuments"`
	Prohibited           bool      `firestore:"prohibited" json:"prohibited"`
	CreatedAt            time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `firestore:"updatedAt" json:"updatedAt"`
}
