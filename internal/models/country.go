package models

import "time"

// Country stores country-level pet travel requirements.
type Country struct {
	ID                      string    `firestore:"id" json:"id"`
	Name                    string    `firestore:"name" json:"name"`
	Code                    string    `firestore:"code" json:"code"`
	EntryRequirements       string    `firestore:"entryRequirements" json:"entryRequirements"`
	VaccinationRequirements string    `firestore:"vaccinationRequirements" json:"vaccinationRequirements"`
	QuarantineRequirements  string    `firestore:"quarantineRequirements" json:"quarantineRequirements"`
	DocumentationTimeline   string    `firestore:"documentationTimeline" json:"documentationTimeline"`
	CreatedAt               time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time `firestore:"updatedAt" json:"updatedAt"`
}
