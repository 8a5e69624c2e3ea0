package assistant

import (
	"context"
	"fmt"

	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/pkg/logger"
)

// Result is the externally visible outcome of processing one query. The
// caller persists ResponseText and TokenUsage onto its stored query record.
type Result struct {
	ResponseText string
	TokenUsage   models.TokenUsage
	IsValid      bool
	Warnings     []string
	Errors       []string
}

type contextBuilder interface {
	Build(ctx context.Context, query *models.UserQuery, includeHistory bool) *Bundle
}

type promptInvoker interface {
	Invoke(ctx context.Context, payload PromptPayload) (*dto.VertexGenerateResponse, error)
}

type responseValidator interface {
	Validate(response string, bundle *Bundle) ValidationResult
}

// Service orchestrates the pipeline: assemble context, compose prompt,
// invoke, validate. ProcessQuery never fails; every error becomes the
// fallback document.
type Service struct {
	contexts  contextBuilder
	invoker   promptInvoker
	validator responseValidator
}

func NewService(contexts contextBuilder, invoker promptInvoker, validator responseValidator) *Service {
	return &Service{
		contexts:  contexts,
		invoker:   invoker,
		validator: validator,
	}
}

func (s *Service) ProcessQuery(ctx context.Context, query *models.UserQuery) (result *Result) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("query processing panicked", "query_id", query.ID, "panic", r)
			result = fallbackResult(fmt.Sprintf("internal error: %v", r))
		}
	}()

	bundle := s.contexts.Build(ctx, query, true)
	payload := ComposePrompt(query.QueryText, bundle)

	resp, err := s.invoker.Invoke(ctx, payload)
	if err != nil {
		log.Error("query processing failed", "query_id", query.ID, "error", err)
		return fallbackResult(err.Error())
	}

	validation := s.validator.Validate(resp.Text, bundle)

	return &Result{
		ResponseText: validation.Response,
		TokenUsage:   resp.Usage,
		IsValid:      validation.IsValid,
		Warnings:     validation.Warnings,
		Errors:       validation.Errors,
	}
}

// HandleFollowUp attaches the conversation id before processing so the
// assembled context includes prior exchanges in the thread.
func (s *Service) HandleFollowUp(ctx context.Context, query *models.UserQuery, conversationID string) *Result {
	query.ConversationID = conversationID
	return s.ProcessQuery(ctx, query)
}

func fallbackResult(errMsg string) *Result {
	return &Result{
		ResponseText: fallbackResponse,
		TokenUsage:   models.TokenUsage{},
		IsValid:      false,
		Errors:       []string{errMsg},
	}
}

const fallbackResponse = `# Pet Travel Information

I apologize, but I'm currently unable to provide specific information about your pet travel query.

## General Pet Travel Guidelines

- Most countries require pets to have a rabies vaccination
- Health certificates issued by a veterinarian are commonly required
- Microchipping is a standard requirement for international pet travel
- Some countries enforce quarantine periods

## What You Can Do Now

- Contact the embassy or consulate of your destination country
- Visit the official government website of your destination country
- Consult with a veterinarian who specializes in international pet travel
- Check with your airline for their specific pet travel requirements

Please try your query again later or contact customer support for assistance.`
