package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pettravel-backend/internal/assistant"
	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/pkg/logger"
)

type queryQStore interface {
	CreateQuery(ctx context.Context, query *models.UserQuery) error
	GetQuery(ctx context.Context, id string) (*models.UserQuery, error)
	UpdateQuery(ctx context.Context, query *models.UserQuery) error
	ListConversation(ctx context.Context, conversationID, excludeID string) ([]models.UserQuery, error)
}

type assistantPipeline interface {
	ProcessQuery(ctx context.Context, query *models.UserQuery) *assistant.Result
	HandleFollowUp(ctx context.Context, query *models.UserQuery, conversationID string) *assistant.Result
}

type queryService struct {
	store    queryQStore
	pipeline assistantPipeline
	clockNow func() time.Time
}

func NewQueryService(store queryQStore, pipeline assistantPipeline) *queryService {
	return &queryService{
		store:    store,
		pipeline: pipeline,
		clockNow: time.Now,
	}
}

// Ask runs one query through the assistant pipeline and persists the stored
// record with the generated response and token usage. Queries without a
// conversation id start a new conversation.
func (s *queryService) Ask(ctx context.Context, req dto.QueryCreateRequest, ip, sessionID string) (*dto.QueryResponse, error) {
	if req.QueryText == "" {
		return nil, errs.NewValidationError("queryText is required")
	}

	query := s.newQuery(req, ip, sessionID)
	if err := s.store.CreateQuery(ctx, query); err != nil {
		return nil, err
	}

	result := s.pipeline.ProcessQuery(ctx, query)
	return s.persistResult(ctx, query, result)
}

// FollowUp threads a new query onto an existing conversation so the pipeline
// assembles prior exchanges into the prompt.
func (s *queryService) FollowUp(ctx context.Context, req dto.QueryCreateRequest, ip, sessionID string) (*dto.QueryResponse, error) {
	if req.QueryText == "" {
		return nil, errs.NewValidationError("queryText is required")
	}
	if req.ConversationID == "" {
		return nil, errs.NewValidationError("conversationId is required for follow-up queries")
	}

	query := s.newQuery(req, ip, sessionID)
	if err := s.store.CreateQuery(ctx, query); err != nil {
		return nil, err
	}

	result := s.pipeline.HandleFollowUp(ctx, query, req.ConversationID)
	return s.persistResult(ctx, query, result)
}

func (s *queryService) GetQuery(ctx context.Context, id string) (*models.UserQuery, error) {
	return s.store.GetQuery(ctx, id)
}

func (s *queryService) Conversation(ctx context.Context, conversationID string) ([]models.UserQuery, error) {
	if conversationID == "" {
		return nil, errs.NewValidationError("conversationId is required")
	}
	return s.store.ListConversation(ctx, conversationID, "")
}

// SubmitFeedback records a user rating for a stored query.
func (s *queryService) SubmitFeedback(ctx context.Context, id string, req dto.FeedbackRequest) error {
	if req.Rating == nil {
		return errs.NewValidationError("rating is required")
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		return errs.NewValidationError("rating must be between 1 and 5")
	}

	query, err := s.store.GetQuery(ctx, id)
	if err != nil {
		return err
	}

	query.FeedbackRating = req.Rating
	query.FeedbackText = req.FeedbackText
	return s.store.UpdateQuery(ctx, query)
}

func (s *queryService) newQuery(req dto.QueryCreateRequest, ip, sessionID string) *models.UserQuery {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	return &models.UserQuery{
		ID:                   uuid.NewString(),
		QueryText:            req.QueryText,
		SourceCountryID:      req.SourceCountryID,
		DestinationCountryID: req.DestinationCountryID,
		PetTypeID:            req.PetTypeID,
		ConversationID:       conversationID,
		ParentQueryID:        req.ParentQueryID,
		IPAddress:            ip,
		SessionID:            sessionID,
		CreatedAt:            s.clockNow(),
	}
}

func (s *queryService) persistResult(ctx context.Context, query *models.UserQuery, result *assistant.Result) (*dto.QueryResponse, error) {
	log := logger.FromContext(ctx)

	query.ResponseText = result.ResponseText
	query.TokenUsage = result.TokenUsage
	if err := s.store.UpdateQuery(ctx, query); err != nil {
		// The user still gets the response; only persistence failed.
		log.Error("failed to persist query response", "query_id", query.ID, "error", err)
	}

	return &dto.QueryResponse{
		ID:             query.ID,
		QueryText:      query.QueryText,
		ResponseText:   result.ResponseText,
		ConversationID: query.ConversationID,
		ParentQueryID:  query.ParentQueryID,
		TokenUsage:     result.TokenUsage,
		IsValid:        result.IsValid,
		Warnings:       result.Warnings,
		Errors:         result.Errors,
		CreatedAt:      query.CreatedAt,
	}, nil
}
