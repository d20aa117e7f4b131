package ai

import (
	"context"

	"resumescan/internal/types"
)

// AIProvider interface for different AI implementations.
// All methods return token usage information; callers can ignore it if not needed.
type AIProvider interface {
	ExtractDetails(ctx context.Context, input types.ScoreResumeInput) (types.PersonalDetails, *TokenUsage, error)
	GenerateNarrative(ctx context.Context, input types.NarrativeInput) (types.Narrative, *TokenUsage, error)
	GenerateInsights(ctx context.Context, input types.InsightsInput) (types.Insights, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
