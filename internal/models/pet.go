package models

import "time"

// Pet is a user-owned animal. Stored under the owner's document.
type Pet struct {
	ID          string    `firestore:"id" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	PetTypeID   string    `firestore:"petTypeId" json:"petTypeId"`
	Breed       string    `firestore:"breed,omitempty" json:"breed,omitempty"`
	Age         *int      `firestore:"age,omitempty" json:"age,omitempty"`
	Weight      *float64  `firestore:"weight,omitempty" json:"weight,omitempty"`
	MicrochipID string    `firestore:"microchipId,omitempty" json:"microchipId,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
