package ai

import (
	"context"

	"outreachr/internal/types"
)

// ComposeRequest is the provider-level input for message composition. The
// profile summary has already been extracted and scored by the service.
type ComposeRequest struct {
	Summary           types.ProfileSummary
	TargetPosition    string
	CompanyHighlights string
	Tone              string
	Length            string
}

// ComposeResult is the structured output every provider returns.
type ComposeResult struct {
	Message string `json:"message"`
}

// AIProvider interface for different message composer implementations.
// Token usage is nil for providers that don't consume tokens.
type AIProvider interface {
	ComposeMessage(ctx context.Context, req ComposeRequest) (ComposeResult, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
