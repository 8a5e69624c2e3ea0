package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type fakeGenerator struct {
	responses []func() (*dto.VertexGenerateResponse, error)
	calls     int
	lastReq   dto.VertexGenerateRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req dto.VertexGenerateRequest) (*dto.VertexGenerateResponse, error) {
	f.lastReq = req
	next := f.responses[f.calls]
	f.calls++
	return next()
}

type fakeLimiter struct {
	admitted int
}

func (f *fakeLimiter) Admit() { f.admitted++ }

func success(text string) func() (*dto.VertexGenerateResponse, error) {
	return func() (*dto.VertexGenerateResponse, error) {
		return &dto.VertexGenerateResponse{
			Text:  text,
			Usage: models.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		}, nil
	}
}

func failure(err error) func() (*dto.VertexGenerateResponse, error) {
	return func() (*dto.VertexGenerateResponse, error) { return nil, err }
}

func TestInvokerRetriesTransientFailures(t *testing.T) {
	gen := &fakeGenerator{responses: []func() (*dto.VertexGenerateResponse, error){
		failure(errs.NewRateLimitedError("quota")),
		failure(errs.NewExternalServiceError("vertex", "unavailable", true)),
		success("all good"),
	}}
	limiter := &fakeLimiter{}

	inv := NewInvoker(gen, limiter, "test-model", 0.7, 2000, 3)
	var slept []time.Duration
	inv.sleep = func(d time.Duration) { slept = append(slept, d) }

	resp, err := inv.Invoke(context.Background(), PromptPayload{System: "sys", User: "user"})
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if resp.Text != "all good" {
		t.Fatalf("text mismatch: got %q", resp.Text)
	}
	if gen.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", gen.calls)
	}
	if limiter.admitted != 3 {
		t.Fatalf("expected admission before every attempt, got %d", limiter.admitted)
	}
	if len(slept) != 2 || slept[0] != time.Second || slept[1] != 2*time.Second {
		t.Fatalf("backoff mismatch: got %v", slept)
	}
}

func TestInvokerAbortsOnNonRetryableFailure(t *testing.T) {
	permanent := errs.NewExternalServiceError("vertex", "bad request", false)
	gen := &fakeGenerator{responses: []func() (*dto.VertexGenerateResponse, error){
		failure(permanent),
	}}

	inv := NewInvoker(gen, &fakeLimiter{}, "test-model", 0.7, 2000, 3)
	inv.sleep = func(d time.Duration) {
		t.Fatalf("unexpected backoff sleep of %v", d)
	}

	_, err := inv.Invoke(context.Background(), PromptPayload{})
	if err != permanent {
		t.Fatalf("expected the permanent error back, got %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", gen.calls)
	}
}

func TestInvokerExhaustsRetries(t *testing.T) {
	gen := &fakeGenerator{responses: []func() (*dto.VertexGenerateResponse, error){
		failure(errs.NewRateLimitedError("quota")),
		failure(errs.NewRateLimitedError("quota")),
		failure(errs.NewRateLimitedError("quota")),
	}}

	inv := NewInvoker(gen, &fakeLimiter{}, "test-model", 0.7, 2000, 3)
	inv.sleep = func(time.Duration) {}

	_, err := inv.Invoke(context.Background(), PromptPayload{})
	if err == nil {
		t.Fatal("expected a terminal error after exhausting retries")
	}
	if _, ok := err.(*errs.ExternalServiceError); !ok {
		t.Fatalf("expected an external service error, got %T", err)
	}
	if gen.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", gen.calls)
	}
}

func TestInvokerSendsConfiguredParameters(t *testing.T) {
	gen := &fakeGenerator{responses: []func() (*dto.VertexGenerateResponse, error){
		success("ok"),
	}}

	inv := NewInvoker(gen, &fakeLimiter{}, "gemini-pro", 0.7, 2000, 3)
	if _, err := inv.Invoke(context.Background(), PromptPayload{System: "sys", User: "user"}); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}

	req := gen.lastReq
	if req.Model != "gemini-pro" {
		t.Fatalf("model mismatch: got %q", req.Model)
	}
	if req.System != "sys" || req.UserMessage != "user" {
		t.Fatalf("payload mismatch: system %q user %q", req.System, req.UserMessage)
	}
	if req.Temperature == nil || *req.Temperature != 0.7 {
		t.Fatalf("temperature mismatch: got %v", req.Temperature)
	}
	if req.MaxOutputTokens == nil || *req.MaxOutputTokens != 2000 {
		t.Fatalf("max tokens mismatch: got %v", req.MaxOutputTokens)
	}
}
