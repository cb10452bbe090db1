package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"outreachr/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ProfileSections", &SectionsTextFormatter{})
	registry.RegisterFormatter("markdown", "ProfileSections", &SectionsMarkdownFormatter{})
	registry.RegisterFormatter("text", "RelevanceResults", &RelevanceTextFormatter{})
	registry.RegisterFormatter("markdown", "RelevanceResults", &RelevanceMarkdownFormatter{})
	registry.RegisterFormatter("text", "ComposeMessageOutput", &ComposeTextFormatter{})
	registry.RegisterFormatter("markdown", "ComposeMessageOutput", &ComposeMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ProfileSections:
		return "ProfileSections"
	case []types.RelevanceResult:
		return "RelevanceResults"
	case types.ComposeMessageOutput:
		return "ComposeMessageOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// SectionsTextFormatter handles text formatting for extracted profile sections
type SectionsTextFormatter struct{}

func (stf *SectionsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ProfileSections)
	if !ok {
		return "", fmt.Errorf("expected ProfileSections, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PROFILE SECTIONS ===\n\n")

	writeTextList(&output, "Experience", result.Experience)
	writeTextList(&output, "Education", result.Education)
	writeTextList(&output, "Skills", result.Skills)

	if summary := strings.TrimSpace(result.Summary); summary != "" {
		output.WriteString("Summary:\n")
		output.WriteString(summary)
		output.WriteString("\n\n")
	}

	writeTextList(&output, "Achievements", result.Achievements)
	writeTextList(&output, "Certifications", result.Certifications)

	return output.String(), nil
}

func (stf *SectionsTextFormatter) SupportedType() string {
	return "ProfileSections"
}

// SectionsMarkdownFormatter handles markdown formatting for extracted profile sections
type SectionsMarkdownFormatter struct{}

func (smf *SectionsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ProfileSections)
	if !ok {
		return "", fmt.Errorf("expected ProfileSections, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Profile Sections\n\n")

	writeMarkdownList(&output, "Experience", result.Experience)
	writeMarkdownList(&output, "Education", result.Education)
	writeMarkdownList(&output, "Skills", result.Skills)

	if summary := strings.TrimSpace(result.Summary); summary != "" {
		output.WriteString("## Summary\n\n")
		output.WriteString(summary)
		output.WriteString("\n\n")
	}

	writeMarkdownList(&output, "Achievements", result.Achievements)
	writeMarkdownList(&output, "Certifications", result.Certifications)

	return output.String(), nil
}

func (smf *SectionsMarkdownFormatter) SupportedType() string {
	return "ProfileSections"
}

// RelevanceTextFormatter handles text formatting for relevance scoring results
type RelevanceTextFormatter struct{}

func (rtf *RelevanceTextFormatter) Format(data any) (string, error) {
	results, ok := data.([]types.RelevanceResult)
	if !ok {
		return "", fmt.Errorf("expected []RelevanceResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RELEVANCE SCORING ===\n\n")

	if len(results) == 0 {
		output.WriteString("No experience entries to score.\n")
		return output.String(), nil
	}

	for i, result := range results {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, result.Entry))
		output.WriteString(fmt.Sprintf("   Score: %d/100\n", result.Score))
		if len(result.MatchingPoints) > 0 {
			output.WriteString("   Matching Points:\n")
			for _, point := range result.MatchingPoints {
				output.WriteString(fmt.Sprintf("   - %s\n", point))
			}
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *RelevanceTextFormatter) SupportedType() string {
	return "RelevanceResults"
}

// RelevanceMarkdownFormatter handles markdown formatting for relevance scoring results
type RelevanceMarkdownFormatter struct{}

func (rmf *RelevanceMarkdownFormatter) Format(data any) (string, error) {
	results, ok := data.([]types.RelevanceResult)
	if !ok {
		return "", fmt.Errorf("expected []RelevanceResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Relevance Scoring\n\n")

	if len(results) == 0 {
		output.WriteString("No experience entries to score.\n")
		return output.String(), nil
	}

	for i, result := range results {
		output.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, result.Entry))
		output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Score))
		if len(result.MatchingPoints) > 0 {
			output.WriteString("### Matching Points\n")
			for _, point := range result.MatchingPoints {
				output.WriteString(fmt.Sprintf("- %s\n", point))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (rmf *RelevanceMarkdownFormatter) SupportedType() string {
	return "RelevanceResults"
}

// ComposeTextFormatter handles text formatting for composed outreach messages
type ComposeTextFormatter struct{}

func (ctf *ComposeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ComposeMessageOutput)
	if !ok {
		return "", fmt.Errorf("expected ComposeMessageOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== OUTREACH MESSAGE ===\n\n")
	output.WriteString(result.Message)
	output.WriteString("\n\n")

	output.WriteString("=== DETAILS ===\n")
	output.WriteString(fmt.Sprintf("Target Position: %s\n", result.TargetPosition))
	output.WriteString(fmt.Sprintf("Tone: %s\n", result.Tone))
	output.WriteString(fmt.Sprintf("Length: %s\n\n", result.Length))

	output.WriteString(fmt.Sprintf("Current Role: %s\n", result.Summary.CurrentRole))
	if len(result.Summary.KeySkills) > 0 {
		output.WriteString(fmt.Sprintf("Key Skills: %s\n", strings.Join(result.Summary.KeySkills, ", ")))
	}
	if len(result.Summary.ExperienceHighlights) > 0 {
		output.WriteString("Experience Highlights:\n")
		for _, highlight := range result.Summary.ExperienceHighlights {
			output.WriteString(fmt.Sprintf("- %s (score %d/100)\n", highlight.Entry, highlight.Score))
		}
	}

	return output.String(), nil
}

func (ctf *ComposeTextFormatter) SupportedType() string {
	return "ComposeMessageOutput"
}

// ComposeMarkdownFormatter handles markdown formatting for composed outreach messages
type ComposeMarkdownFormatter struct{}

func (cmf *ComposeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ComposeMessageOutput)
	if !ok {
		return "", fmt.Errorf("expected ComposeMessageOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Outreach Message\n\n")
	output.WriteString(result.Message)
	output.WriteString("\n\n")

	output.WriteString("## Details\n\n")
	output.WriteString(fmt.Sprintf("**Target Position:** %s\n\n", result.TargetPosition))
	output.WriteString(fmt.Sprintf("**Tone:** %s\n\n", result.Tone))
	output.WriteString(fmt.Sprintf("**Length:** %s\n\n", result.Length))

	output.WriteString(fmt.Sprintf("**Current Role:** %s\n\n", result.Summary.CurrentRole))
	if len(result.Summary.KeySkills) > 0 {
		output.WriteString("### Key Skills\n")
		for _, skill := range result.Summary.KeySkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Summary.ExperienceHighlights) > 0 {
		output.WriteString("### Experience Highlights\n")
		for _, highlight := range result.Summary.ExperienceHighlights {
			output.WriteString(fmt.Sprintf("- %s (score %d/100)\n", highlight.Entry, highlight.Score))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (cmf *ComposeMarkdownFormatter) SupportedType() string {
	return "ComposeMessageOutput"
}

func writeTextList(output *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(title + ":\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

func writeMarkdownList(output *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString("## " + title + "\n\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
