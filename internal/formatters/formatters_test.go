package formatters

import (
	"strings"
	"testing"

	"outreachr/internal/types"
)

func sampleSections() types.ProfileSections {
	return types.ProfileSections{
		Experience: []string{"Senior Software Engineer at Acme Corp"},
		Skills:     []string{"Go", "Kubernetes"},
		Summary:    "Backend engineer. ",
	}
}

func TestFormatSectionsText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleSections(), "text")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	for _, want := range []string{"Experience:", "Senior Software Engineer at Acme Corp", "Skills:", "Summary:"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
	if strings.Contains(out, "Certifications:") {
		t.Error("empty sections should be omitted")
	}
}

func TestFormatSectionsMarkdown(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleSections(), "markdown")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(out, "# Profile Sections") {
		t.Error("markdown output missing title")
	}
	if !strings.Contains(out, "## Skills") {
		t.Error("markdown output missing skills heading")
	}
}

func TestFormatRelevanceResults(t *testing.T) {
	results := []types.RelevanceResult{
		{Entry: "Led a software team", Score: 60, MatchingPoints: []string{"Led a software team"}},
	}

	out, err := GlobalRegistry.Format(results, "text")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(out, "Score: 60/100") {
		t.Errorf("text output missing score, got %q", out)
	}

	empty, err := GlobalRegistry.Format([]types.RelevanceResult{}, "text")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(empty, "No experience entries to score.") {
		t.Error("empty results should render placeholder")
	}
}

func TestFormatComposeOutput(t *testing.T) {
	output := types.ComposeMessageOutput{
		Message:        "Hi [Name],\n\nWe should talk.\n\nBest regards,\n[Your Name]",
		TargetPosition: "Staff Engineer",
		Tone:           types.ToneProfessional,
		Length:         types.LengthStandard,
		Summary: types.ProfileSummary{
			CurrentRole: "Senior Software Engineer",
			KeySkills:   []string{"Go"},
		},
	}

	text, err := GlobalRegistry.Format(output, "text")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(text, "Hi [Name],") {
		t.Error("text output missing message body")
	}
	if !strings.Contains(text, "Target Position: Staff Engineer") {
		t.Error("text output missing target position")
	}

	md, err := GlobalRegistry.Format(output, "markdown")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(md, "**Tone:** Professional") {
		t.Error("markdown output missing tone")
	}
}

func TestFormatJSONFallback(t *testing.T) {
	out, err := GlobalRegistry.Format(map[string]string{"status": "ok"}, "json")
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(out, `"status": "ok"`) {
		t.Errorf("json output = %q", out)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleSections(), "xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
