package dto

import "github.com/GregMSThompson/pettravel-backend/internal/models"

type VertexGenerateRequest struct {
	Model           string
	System          string
	UserMessage     string
	Temperature     *float32
	MaxOutputTokens *int32
}

type VertexGenerateResponse struct {
	Text  string
	Usage models.TokenUsage
	Raw   any
}
