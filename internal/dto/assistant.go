package dto

import (
	"time"

	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type QueryCreateRequest struct {
	QueryText            string `json:"queryText"`
	SourceCountryID      string `json:"sourceCountryId,omitempty"`
	DestinationCountryID string `json:"destinationCountryId,omitempty"`
	PetTypeID            string `json:"petTypeId,omitempty"`
	ConversationID       string `json:"conversationId,omitempty"`
	ParentQueryID        string `json:"parentQueryId,omitempty"`
}

type QueryResponse struct {
	ID             string            `json:"id"`
	QueryText      string            `json:"queryText"`
	ResponseText   string            `json:"responseText"`
	ConversationID string            `json:"conversationId"`
	ParentQueryID  string            `json:"parentQueryId,omitempty"`
	TokenUsage     models.TokenUsage `json:"tokenUsage"`
	IsValid        bool              `json:"isValid"`
	Warnings       []string          `json:"warnings"`
	Errors         []string          `json:"errors"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type FeedbackRequest struct {
	Rating       *int   `json:"rating"`
	FeedbackText string `json:"feedbackText,omitempty"`
}
