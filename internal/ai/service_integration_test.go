package ai

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"outreachr/internal/config"
	"outreachr/internal/errors"
	"outreachr/internal/types"
)

// Helper functions to create pointers for test values
func timePtr(d time.Duration) *time.Duration { return &d }
func intPtr(i int) *int                      { return &i }
func int32Ptr(i int32) *int32                { return &i }
func float32Ptr(f float32) *float32          { return &f }
func boolPtr(b bool) *bool                   { return &b }

var testLogger = errors.NewLogger(slog.LevelDebug)

func localTestConfig() *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider:         "local",
		Model:            "local-template",
		Timeout:          timePtr(30 * time.Second),
		MaxRetries:       intPtr(0),
		Temperature:      float32Ptr(0),
		MaxOutputTokens:  int32Ptr(500),
		UseSystemPrompts: boolPtr(false),
	}
}

const testProfileText = `Summary
Backend engineer with a decade of experience.

Experience
Senior Software Engineer at Acme Corp
Led a team of five engineers building payment APIs
Increased deployment frequency by 40%

Skills
Go, Kubernetes, PostgreSQL
`

func TestServiceUnsupportedProvider(t *testing.T) {
	cfg := localTestConfig()
	cfg.Provider = "openai"

	_, err := NewService(cfg, "compose", testLogger)
	if err == nil {
		t.Fatal("Expected error for unsupported provider")
	}
	if !strings.Contains(err.Error(), "Unsupported AI provider") {
		t.Errorf("error %q does not mention unsupported provider", err.Error())
	}
}

func TestServiceComposeMessageLocal(t *testing.T) {
	service, err := NewService(localTestConfig(), "compose", testLogger)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}

	output, tokenUsage, err := service.ComposeMessage(context.Background(), types.ComposeMessageInput{
		ProfileText:       testProfileText,
		TargetPosition:    "Staff Engineer",
		CompanyHighlights: "We are a remote-first payments company.",
		Tone:              types.ToneProfessional,
		Length:            types.LengthStandard,
	})
	if err != nil {
		t.Fatalf("ComposeMessage() failed: %v", err)
	}

	if tokenUsage != nil {
		t.Error("Local provider should not report token usage")
	}
	if !strings.HasPrefix(output.Message, "Hi [Name],") {
		t.Errorf("message should open with greeting, got %q", output.Message)
	}
	if !strings.Contains(output.Message, "Staff Engineer") {
		t.Error("message should mention the target position")
	}
	if !strings.Contains(output.Message, "Go, Kubernetes, PostgreSQL") {
		t.Error("standard message should mention key skills")
	}
	if !strings.Contains(output.Message, "remote-first payments company") {
		t.Error("message should include company highlights")
	}
	if output.Tone != types.ToneProfessional || output.Length != types.LengthStandard {
		t.Errorf("output tone/length = %q/%q", output.Tone, output.Length)
	}
	if output.Summary.CurrentRole != "Senior Software Engineer at Acme Corp" {
		t.Errorf("summary current role = %q", output.Summary.CurrentRole)
	}
	if len(output.Sections.Experience) != 3 {
		t.Errorf("extracted %d experience entries, want 3", len(output.Sections.Experience))
	}
}

func TestServiceComposeMessageDefaults(t *testing.T) {
	service, err := NewService(localTestConfig(), "compose", testLogger)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}

	output, _, err := service.ComposeMessage(context.Background(), types.ComposeMessageInput{
		ProfileText:    testProfileText,
		TargetPosition: "Engineering Manager",
	})
	if err != nil {
		t.Fatalf("ComposeMessage() failed: %v", err)
	}

	if output.Tone != types.ToneProfessional {
		t.Errorf("default tone = %q, want %q", output.Tone, types.ToneProfessional)
	}
	if output.Length != types.LengthStandard {
		t.Errorf("default length = %q, want %q", output.Length, types.LengthStandard)
	}
}

func TestServiceComposeMessageValidation(t *testing.T) {
	service, err := NewService(localTestConfig(), "compose", testLogger)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}

	tests := []struct {
		name        string
		input       types.ComposeMessageInput
		errContains string
	}{
		{
			name: "unknown tone",
			input: types.ComposeMessageInput{
				ProfileText:    testProfileText,
				TargetPosition: "Staff Engineer",
				Tone:           "Aggressive",
			},
			errContains: "Invalid tone",
		},
		{
			name: "unknown length",
			input: types.ComposeMessageInput{
				ProfileText:    testProfileText,
				TargetPosition: "Staff Engineer",
				Length:         "novella",
			},
			errContains: "Invalid length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ComposeMessage(context.Background(), tt.input)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestLocalProviderToneAndLength(t *testing.T) {
	provider, err := NewLocalProvider(localTestConfig(), testLogger)
	if err != nil {
		t.Fatalf("NewLocalProvider() failed: %v", err)
	}

	summary := types.ProfileSummary{
		CurrentRole:  "Senior Software Engineer at Acme Corp",
		KeySkills:    []string{"Go", "Kubernetes"},
		Achievements: []string{"Increased deployment frequency by 40%"},
	}

	t.Run("casual greeting", func(t *testing.T) {
		result, _, err := provider.ComposeMessage(context.Background(), ComposeRequest{
			Summary:        summary,
			TargetPosition: "Staff Engineer",
			Tone:           types.ToneCasual,
			Length:         types.LengthStandard,
		})
		if err != nil {
			t.Fatalf("ComposeMessage() failed: %v", err)
		}
		if !strings.HasPrefix(result.Message, "Hey [Name],") {
			t.Errorf("casual message should open with 'Hey [Name],', got %q", result.Message)
		}
	})

	t.Run("brief omits skills", func(t *testing.T) {
		result, _, err := provider.ComposeMessage(context.Background(), ComposeRequest{
			Summary:        summary,
			TargetPosition: "Staff Engineer",
			Tone:           types.ToneProfessional,
			Length:         types.LengthBrief,
		})
		if err != nil {
			t.Fatalf("ComposeMessage() failed: %v", err)
		}
		if strings.Contains(result.Message, "Your skills in") {
			t.Error("brief message should not include the skills line")
		}
	})

	t.Run("detailed includes achievement", func(t *testing.T) {
		result, _, err := provider.ComposeMessage(context.Background(), ComposeRequest{
			Summary:        summary,
			TargetPosition: "Staff Engineer",
			Tone:           types.ToneFriendly,
			Length:         types.LengthDetailed,
		})
		if err != nil {
			t.Fatalf("ComposeMessage() failed: %v", err)
		}
		if !strings.Contains(result.Message, "Increased deployment frequency by 40%") {
			t.Error("detailed message should include an achievement")
		}
	})

	t.Run("deterministic output", func(t *testing.T) {
		req := ComposeRequest{
			Summary:        summary,
			TargetPosition: "Staff Engineer",
			Tone:           types.ToneProfessional,
			Length:         types.LengthStandard,
		}
		first, _, err := provider.ComposeMessage(context.Background(), req)
		if err != nil {
			t.Fatalf("ComposeMessage() failed: %v", err)
		}
		second, _, err := provider.ComposeMessage(context.Background(), req)
		if err != nil {
			t.Fatalf("ComposeMessage() failed: %v", err)
		}
		if first.Message != second.Message {
			t.Error("local composer should be deterministic")
		}
	})
}

func TestLocalProviderModelInfo(t *testing.T) {
	provider, err := NewLocalProvider(localTestConfig(), testLogger)
	if err != nil {
		t.Fatalf("NewLocalProvider() failed: %v", err)
	}

	info := provider.GetModelInfo(context.Background())
	if !info.Available {
		t.Error("local provider should always be available")
	}
	if info.Name != "local-template" {
		t.Errorf("model name = %q, want 'local-template'", info.Name)
	}
}

func TestCircuitBreakerIntegrationWithService(t *testing.T) {
	// Create a service with specific circuit breaker config
	testOpConfig := &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "test-model",
		Timeout:          timePtr(30 * time.Second),
		APIKey:           "test-key",
		MaxRetries:       intPtr(1),
		Temperature:      float32Ptr(0.5),
		MaxOutputTokens:  int32Ptr(500),
		UseSystemPrompts: boolPtr(true),
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      5,
			Interval:         30 * time.Second,
			Timeout:          45 * time.Second,
			MinRequests:      2,
			FailureThreshold: 0.8,
		},
	}

	service, err := NewService(testOpConfig, "compose", testLogger)
	if err != nil {
		t.Logf("Received expected error when creating service with test key: %v", err)
	}

	// Verify the service has the correct configuration
	if service.config.CircuitBreaker.MaxRequests != 5 {
		t.Errorf("Expected circuit breaker max requests 5, got %d", service.config.CircuitBreaker.MaxRequests)
	}
	if service.config.CircuitBreaker.FailureThreshold != 0.8 {
		t.Errorf("Expected circuit breaker failure threshold 0.8, got %f", service.config.CircuitBreaker.FailureThreshold)
	}

	// Test that the provider has a circuit breaker
	if geminiProvider, ok := service.Provider.(*GeminiProvider); ok {
		stats := geminiProvider.GetCircuitBreakerStats()

		aiOpsStats, ok := stats["ai_operations"].(map[string]any)
		if !ok {
			t.Fatal("AI operations stats should exist and be a map")
		}
		if name, _ := aiOpsStats["name"].(string); name != "AI-compose" {
			t.Errorf("Expected circuit breaker name 'AI-compose', got '%s'", name)
		}

		modelOpsStats, ok := stats["model_operations"].(map[string]any)
		if !ok {
			t.Fatal("Model operations stats should exist and be a map")
		}
		if name, _ := modelOpsStats["name"].(string); name != "AI-Model-compose" {
			t.Errorf("Expected model circuit breaker name 'AI-Model-compose', got '%s'", name)
		}

		// Check overall health
		if overallHealthy, _ := stats["overall_healthy"].(bool); !overallHealthy {
			t.Error("Circuit breaker should be healthy initially")
		}
	} else {
		t.Fatal("Service provider is not of type *GeminiProvider")
	}
}
