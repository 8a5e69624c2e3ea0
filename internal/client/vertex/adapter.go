// Package vertex wraps the Vertex AI generative client behind a small
// adapter so the rest of the service depends on DTOs instead of the SDK.
package vertex

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type Adapter struct {
	client *genai.Client
}

func NewAdapter(ctx context.Context, projectID, region string) (*Adapter, error) {
	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("creating vertex client: %w", err)
	}
	return &Adapter{client: client}, nil
}

func (a *Adapter) Close() error {
	return a.client.Close()
}

// Generate sends a single-turn generation request and returns the
// concatenated text of the first candidate along with token usage.
func (a *Adapter) Generate(ctx context.Context, req dto.VertexGenerateRequest) (*dto.VertexGenerateResponse, error) {
	model := a.client.GenerativeModel(req.Model)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}
	if req.Temperature != nil {
		model.SetTemperature(*req.Temperature)
	}
	if req.MaxOutputTokens != nil {
		model.SetMaxOutputTokens(*req.MaxOutputTokens)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.UserMessage))
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errs.NewExternalServiceError("vertex", "model returned no candidates", false)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := &dto.VertexGenerateResponse{
		Text: sb.String(),
		Raw:  resp,
	}
	if resp.UsageMetadata != nil {
		out.Usage = models.TokenUsage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// classifyError maps gRPC status codes onto service error types so the
// caller can tell rate limiting and transient outages apart from hard
// failures.
func classifyError(err error) error {
	switch status.Code(err) {
	case codes.ResourceExhausted:
		return errs.NewRateLimitedError("vertex quota exhausted")
	case codes.Unavailable, codes.Internal, codes.DeadlineExceeded, codes.Aborted:
		return errs.NewExternalServiceError("vertex", "vertex temporarily unavailable: "+err.Error(), true)
	default:
		return errs.NewExternalServiceError("vertex", "vertex request failed: "+err.Error(), false)
	}
}
