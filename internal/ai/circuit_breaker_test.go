package ai

import (
	"testing"
	"time"

	"outreachr/internal/config"

	"google.golang.org/genai"
)

func composeBreakerConfig() *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestComposeCircuitBreaker(t *testing.T) {
	cb := NewAICircuitBreaker("compose", composeBreakerConfig(), nil)
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil when enabled")
	}

	stats := cb.GetStats()

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}
	if name != "AI-compose" {
		t.Errorf("Expected circuit breaker name 'AI-compose', got '%s'", name)
	}

	state, ok := stats["state"].(string)
	if !ok {
		t.Fatal("Circuit breaker state not found")
	}
	if state != "closed" {
		t.Errorf("Expected initial state 'closed', got '%s'", state)
	}

	enabled, ok := stats["enabled"].(bool)
	if !ok {
		t.Fatal("Circuit breaker enabled status not found")
	}
	if !enabled {
		t.Error("Circuit breaker should be enabled")
	}

	if !cb.IsHealthy() {
		t.Error("Circuit breaker should be healthy initially")
	}
}

func TestModelCircuitBreaker(t *testing.T) {
	cb := NewModelCircuitBreaker("compose", composeBreakerConfig(), nil)
	if cb == nil {
		t.Fatal("Model circuit breaker should not be nil when enabled")
	}

	stats := cb.GetModelStats()

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Model circuit breaker name not found")
	}
	if name != "AI-Model-compose" {
		t.Errorf("Expected model circuit breaker name 'AI-Model-compose', got '%s'", name)
	}

	if !cb.IsModelHealthy() {
		t.Error("Model circuit breaker should be healthy initially")
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false,
		},
	}

	if cb := NewAICircuitBreaker("compose", disabledConfig, nil); cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}
	if cb := NewModelCircuitBreaker("compose", disabledConfig, nil); cb != nil {
		t.Fatal("Model circuit breaker should be nil when disabled")
	}
}

func TestNilCircuitBreakerPassesThrough(t *testing.T) {
	// A nil breaker executes the function directly and reports healthy
	var cb *AICircuitBreaker

	called := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if !called {
		t.Error("Function should be executed when breaker is nil")
	}

	if !cb.IsHealthy() {
		t.Error("Nil circuit breaker should report healthy")
	}

	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("Nil circuit breaker stats should report enabled=false")
	}
}
