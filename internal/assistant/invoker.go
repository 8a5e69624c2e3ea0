package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/pkg/helpers"
	"github.com/GregMSThompson/pettravel-backend/pkg/logger"
)

type textGenerator interface {
	Generate(ctx context.Context, req dto.VertexGenerateRequest) (*dto.VertexGenerateResponse, error)
}

type admitter interface {
	Admit()
}

// Invoker wraps a single generation call with admission control, retry, and
// exponential backoff. Rate-limit rejections and transient upstream failures
// are retried; anything else aborts immediately.
type Invoker struct {
	generator   textGenerator
	limiter     admitter
	model       string
	temperature float32
	maxTokens   int32
	maxRetries  int
	sleep       func(time.Duration)
}

func NewInvoker(generator textGenerator, limiter admitter, model string, temperature float32, maxTokens int32, maxRetries int) *Invoker {
	return &Invoker{
		generator:   generator,
		limiter:     limiter,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		maxRetries:  maxRetries,
		sleep:       time.Sleep,
	}
}

func (inv *Invoker) Invoke(ctx context.Context, payload PromptPayload) (*dto.VertexGenerateResponse, error) {
	log := logger.FromContext(ctx)

	req := dto.VertexGenerateRequest{
		Model:           inv.model,
		System:          payload.System,
		UserMessage:     payload.User,
		Temperature:     helpers.Ptr(inv.temperature),
		MaxOutputTokens: helpers.Ptr(inv.maxTokens),
	}

	backoff := time.Second
	var lastErr error

	for attempt := 1; attempt <= inv.maxRetries; attempt++ {
		inv.limiter.Admit()

		resp, err := inv.generator.Generate(ctx, req)
		if err == nil {
			log.Info("generated response", "attempt", attempt, "total_tokens", resp.Usage.TotalTokens)
			return resp, nil
		}
		if !retryable(err) {
			log.Error("generation failed", "attempt", attempt, "error", err)
			return nil, err
		}

		lastErr = err
		log.Warn("retryable generation failure", "attempt", attempt, "max_retries", inv.maxRetries, "error", err)
		if attempt < inv.maxRetries {
			inv.sleep(backoff)
			backoff *= 2
		}
	}

	log.Error("generation retries exhausted", "max_retries", inv.maxRetries, "error", lastErr)
	return nil, errs.NewExternalServiceError("vertex",
		fmt.Sprintf("generation failed after %d attempts: %v", inv.maxRetries, lastErr), false)
}

func retryable(err error) bool {
	switch e := err.(type) {
	case *errs.RateLimitedError:
		return true
	case *errs.ExternalServiceError:
		return e.Transient
	default:
		return false
	}
}
