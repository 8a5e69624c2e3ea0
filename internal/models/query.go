package models

import "time"

// TokenUsage records what one generation call cost. Zero value marshals to an
// empty object, which is what fallback responses carry.
type TokenUsage struct {
	PromptTokens     int `firestore:"promptTokens,omitempty" json:"prompt_tokens,omitempty"`
	CompletionTokens int `firestore:"completionTokens,omitempty" json:"completion_tokens,omitempty"`
	TotalTokens      int `firestore:"totalTokens,omitempty" json:"total_tokens,omitempty"`
}

// UserQuery stores one user question and the assistant's answer. Queries in
// the same conversation share a conversationId.
type UserQuery struct {
	ID                   string     `firestore:"id" json:"id"`
	QueryText            string     `firestore:"queryText" json:"queryText"`
	ResponseText         string     `firestore:"responseText" json:"responseText"`
	SourceCountryID      string     `firestore:"sourceCountryId,omitempty" json:"sourceCountryId,omitempty"`
	DestinationCountryID string     `firestore:"destinationCountryId,omitempty" json:"destinationCountryId,omitempty"`
	PetTypeID            string     `firestore:"petTypeId,omitempty" json:"petTypeId,omitempty"`
	ConversationID       string     `firestore:"conversationId,omitempty" json:"conversationId,omitempty"`
	ParentQueryID        string     `firestore:"parentQueryId,omitempty" json:"parentQueryId,omitempty"`
	TokenUsage           TokenUsage `firestore:"tokenUsage,omitempty" json:"tokenUsage"`
	FeedbackRating       *int       `firestore:"feedbackRating,omitempty" json:"feedbackRating,omitempty"`
	FeedbackText         string     `firestore:"feedbackText,omitempty" json:"feedbackText,omitempty"`
	IPAddress            string     `firestore:"ipAddress,omitempty" json:"-"`
	SessionID            string     `firestore:"sessionId,omitempty" json:"-"`
	CreatedAt            time.Time  `firestore:"createdAt" json:"createdAt"`
}
