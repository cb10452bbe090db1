package ai

import (
	"context"
	"fmt"

	"outreachr/internal/config"
	"outreachr/internal/errors"
	"outreachr/internal/profile"
	"outreachr/internal/types"
)

// Service handles outreach message composition on top of a provider
type Service struct {
	Provider AIProvider // Exported for access from server package
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	var provider AIProvider
	var err error

	// Debug logging for service initialization
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	case "local":
		provider, err = NewLocalProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// ComposeMessage extracts and summarizes the profile text, then asks the
// provider for an outreach message
func (s *Service) ComposeMessage(ctx context.Context, input types.ComposeMessageInput) (types.ComposeMessageOutput, *TokenUsage, error) {
	tone, err := normalizeTone(input.Tone)
	if err != nil {
		return types.ComposeMessageOutput{}, nil, err
	}
	length, err := normalizeLength(input.Length)
	if err != nil {
		return types.ComposeMessageOutput{}, nil, err
	}

	sections := profile.Extract(input.ProfileText)
	summary := profile.BuildSummary(sections, input.TargetPosition)

	result, tokenUsage, err := s.Provider.ComposeMessage(ctx, ComposeRequest{
		Summary:           summary,
		TargetPosition:    input.TargetPosition,
		CompanyHighlights: input.CompanyHighlights,
		Tone:              tone,
		Length:            length,
	})
	if err != nil {
		return types.ComposeMessageOutput{}, nil, err
	}

	return types.ComposeMessageOutput{
		Message:        result.Message,
		TargetPosition: input.TargetPosition,
		Tone:           tone,
		Length:         length,
		Sections:       sections,
		Summary:        summary,
	}, tokenUsage, nil
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

// normalizeTone validates the requested tone, defaulting to Professional
func normalizeTone(tone string) (string, error) {
	switch tone {
	case "":
		return types.ToneProfessional, nil
	case types.ToneProfessional, types.ToneFriendly, types.ToneCasual:
		return tone, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidTone,
			fmt.Sprintf("Invalid tone: %s (must be 'Professional', 'Friendly' or 'Casual')", tone), nil)
	}
}

// normalizeLength validates the requested length, defaulting to standard
func normalizeLength(length string) (string, error) {
	switch length {
	case "":
		return types.LengthStandard, nil
	case types.LengthBrief, types.LengthStandard, types.LengthDetailed:
		return length, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidLength,
			fmt.Sprintf("Invalid length: %s (must be 'brief', 'standard' or 'detailed')", length), nil)
	}
}
