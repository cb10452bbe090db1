package config

import (
	"strings"
	"testing"
)

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    int64
		expectError bool
	}{
		{name: "int64 value", input: int64(42), expected: 42},
		{name: "float64 value", input: float64(42.0), expected: 42},
		{name: "string value", input: "42", expected: 42},
		{name: "invalid string value", input: "not-a-number", expectError: true},
		{name: "unsupported type", input: []string{"42"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseVersionValue(tt.input, "test/path")

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if result != tt.expected {
				t.Errorf("parseVersionValue() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	config := &Config{
		AI: AIConfig{
			Compose: OperationAIConfig{},
		},
	}

	geminiKey := "test-gemini-key"
	applyGeminiKeyToConfig(config, geminiKey)

	if config.AI.APIKey != geminiKey {
		t.Errorf("AI.APIKey = %q, want %q", config.AI.APIKey, geminiKey)
	}
	if config.AI.Compose.APIKey != geminiKey {
		t.Errorf("AI.Compose.APIKey = %q, want %q", config.AI.Compose.APIKey, geminiKey)
	}
}

func TestApplyGeminiKeyToConfigWithExistingKey(t *testing.T) {
	existingKey := "existing-compose-key"
	config := &Config{
		AI: AIConfig{
			Compose: OperationAIConfig{APIKey: existingKey},
		},
	}

	geminiKey := "test-gemini-key"
	applyGeminiKeyToConfig(config, geminiKey)

	if config.AI.APIKey != geminiKey {
		t.Errorf("AI.APIKey = %q, want %q", config.AI.APIKey, geminiKey)
	}
	// Operation-level keys are never overwritten
	if config.AI.Compose.APIKey != existingKey {
		t.Errorf("AI.Compose.APIKey = %q, want %q", config.AI.Compose.APIKey, existingKey)
	}
}

func TestLoadSingleCertificate(t *testing.T) {
	tests := []struct {
		name        string
		tlsData     *VaultSecret
		key         string
		expected    int
		expectValue string
	}{
		{
			name: "valid certificate content",
			tlsData: &VaultSecret{
				Data: map[string]any{
					"cert": "-----BEGIN CERTIFICATE-----\ntest-cert\n-----END CERTIFICATE-----",
				},
			},
			key:         "cert",
			expected:    1,
			expectValue: "-----BEGIN CERTIFICATE-----\ntest-cert\n-----END CERTIFICATE-----",
		},
		{
			name: "missing key",
			tlsData: &VaultSecret{
				Data: map[string]any{},
			},
			key:      "cert",
			expected: 0,
		},
		{
			name: "empty content",
			tlsData: &VaultSecret{
				Data: map[string]any{"cert": ""},
			},
			key:      "cert",
			expected: 0,
		},
		{
			name: "non-string content",
			tlsData: &VaultSecret{
				Data: map[string]any{"cert": 42},
			},
			key:      "cert",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target string
			count := loadSingleCertificate(tt.tlsData, tt.key, &target, "TLS certificate content", nil)

			if count != tt.expected {
				t.Errorf("loadSingleCertificate() = %d, want %d", count, tt.expected)
			}
			if target != tt.expectValue {
				t.Errorf("target = %q, want %q", target, tt.expectValue)
			}
		})
	}
}

func TestValidateTLSDeprecatedFields(t *testing.T) {
	tests := []struct {
		name        string
		data        map[string]any
		expectError bool
		errContains string
	}{
		{
			name:        "content fields only",
			data:        map[string]any{"cert": "x", "key": "y", "ca": "z"},
			expectError: false,
		},
		{
			name:        "deprecated cert_file field",
			data:        map[string]any{"cert_file": "/etc/certs/server.pem"},
			expectError: true,
			errContains: "cert_file",
		},
		{
			name:        "deprecated key_file field",
			data:        map[string]any{"key_file": "/etc/certs/server.key"},
			expectError: true,
			errContains: "key_file",
		},
		{
			name:        "deprecated ca_file field",
			data:        map[string]any{"ca_file": "/etc/certs/ca.pem"},
			expectError: true,
			errContains: "ca_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSDeprecatedFields(&VaultSecret{Data: tt.data}, nil)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not mention %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestNewVaultClientDisabled(t *testing.T) {
	client, err := NewVaultClient(VaultConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when Vault is disabled")
	}
}

func TestGetSecretV2NilClient(t *testing.T) {
	var client *VaultClient
	if _, err := client.GetSecretV2("secret/data/test"); err == nil {
		t.Error("Expected error for nil client")
	}
}
