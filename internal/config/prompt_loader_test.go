package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePromptFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write prompt file: %v", err)
	}
	return path
}

func TestLoadPromptsFromFiles(t *testing.T) {
	tempDir := t.TempDir()

	systemPromptContent := "You are a recruiter who writes concise outreach."
	userPromptContent := "Write an outreach message for {{.TargetPosition}}."

	systemPromptFile := writePromptFile(t, tempDir, "system.md", systemPromptContent)
	userPromptFile := writePromptFile(t, tempDir, "user.md", userPromptContent)

	config := &Config{
		AI: AIConfig{
			Compose: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						ComposeMessageFile: systemPromptFile,
					},
					UserPrompts: UserPrompts{
						ComposeMessageFile: userPromptFile,
					},
				},
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("loadPromptsFromFiles() failed: %v", err)
	}

	loadedOps := GetPromptsForOperation("compose")
	if loadedOps.SystemPrompts.ComposeMessage != systemPromptContent {
		t.Errorf("loaded system prompt = %q, want %q",
			loadedOps.SystemPrompts.ComposeMessage, systemPromptContent)
	}
	if loadedOps.UserPrompts.ComposeMessage != userPromptContent {
		t.Errorf("loaded user prompt = %q, want %q",
			loadedOps.UserPrompts.ComposeMessage, userPromptContent)
	}
}

func TestLoadPromptsFromFilesMissingFile(t *testing.T) {
	tempDir := t.TempDir()

	config := &Config{
		AI: AIConfig{
			Compose: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						ComposeMessageFile: filepath.Join(tempDir, "nonexistent.md"),
					},
				},
			},
		},
	}

	err := config.loadPromptsFromFiles()
	if err == nil {
		t.Fatal("Expected error for missing prompt file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not mention missing file", err.Error())
	}
}

func TestLoadPromptsFromFilesEmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	emptyFile := writePromptFile(t, tempDir, "empty.md", "   \n\t\n")

	config := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				UserPrompts: UserPrompts{
					ComposeMessageFile: emptyFile,
				},
			},
		},
	}

	err := config.loadPromptsFromFiles()
	if err == nil {
		t.Fatal("Expected error for empty prompt file")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("error %q does not mention empty file", err.Error())
	}
}

func TestValidatePromptFiles(t *testing.T) {
	tempDir := t.TempDir()
	validFile := writePromptFile(t, tempDir, "valid.md", "prompt content")

	tests := []struct {
		name        string
		systemFile  string
		userFile    string
		expectError bool
	}{
		{
			name:       "no files configured",
			systemFile: "",
			userFile:   "",
		},
		{
			name:       "valid files",
			systemFile: validFile,
			userFile:   validFile,
		},
		{
			name:        "missing system file",
			systemFile:  filepath.Join(tempDir, "missing.md"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				AI: AIConfig{
					Compose: OperationAIConfig{
						CustomPrompts: PromptConfig{
							SystemPrompts: SystemPrompts{ComposeMessageFile: tt.systemFile},
							UserPrompts:   UserPrompts{ComposeMessageFile: tt.userFile},
						},
					},
				},
			}

			err := config.validatePromptFiles()
			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestGetPromptsForOperationFallsBackToGlobal(t *testing.T) {
	loadedPrompts.Global.SystemPrompts.ComposeMessage = "global system"
	defer func() { loadedPrompts.Global.SystemPrompts.ComposeMessage = "" }()

	got := GetPromptsForOperation("unknown")
	if got.SystemPrompts.ComposeMessage != "global system" {
		t.Errorf("fallback system prompt = %q, want %q",
			got.SystemPrompts.ComposeMessage, "global system")
	}
}
