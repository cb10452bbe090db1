package profile

import (
	"reflect"
	"testing"

	"outreachr/internal/types"
)

func TestBuildSummary(t *testing.T) {
	sections := types.ProfileSections{
		Experience: []string{
			"Staff Software Engineer at Acme",
			"Improved deploy times by 60%",
			"Backend Engineer at Initech",
			"Intern at Hooli",
		},
		Education:      []string{"MS CS Stanford", "BS CS Berkeley", "High school"},
		Skills:         []string{"Go", "Python", "SQL", "Kubernetes", "Terraform", "Rust"},
		Certifications: []string{"CKA"},
		Summary:        "Seasoned engineer. ",
	}

	summary := BuildSummary(sections, "Senior Developer")

	if summary.CurrentRole != "Staff Software Engineer at Acme" {
		t.Errorf("CurrentRole = %q, want first experience entry", summary.CurrentRole)
	}
	if want := []string{"Go", "Python", "SQL", "Kubernetes", "Terraform"}; !reflect.DeepEqual(summary.KeySkills, want) {
		t.Errorf("KeySkills = %v, want %v", summary.KeySkills, want)
	}
	if len(summary.ExperienceHighlights) != 3 {
		t.Fatalf("got %d highlights, want 3", len(summary.ExperienceHighlights))
	}
	for i, h := range summary.ExperienceHighlights {
		if h.Score < 40 || h.Score > 100 {
			t.Errorf("highlight[%d].Score = %d outside [40, 100]", i, h.Score)
		}
	}
	if want := []string{"Improved deploy times by 60%"}; !reflect.DeepEqual(summary.Achievements, want) {
		t.Errorf("Achievements = %v, want %v", summary.Achievements, want)
	}
	if want := []string{"MS CS Stanford", "BS CS Berkeley"}; !reflect.DeepEqual(summary.Education, want) {
		t.Errorf("Education = %v, want %v", summary.Education, want)
	}
	if want := []string{"CKA"}; !reflect.DeepEqual(summary.Certifications, want) {
		t.Errorf("Certifications = %v, want %v", summary.Certifications, want)
	}
	if summary.Summary != "Seasoned engineer." {
		t.Errorf("Summary = %q, want trimmed summary", summary.Summary)
	}
}

func TestBuildSummaryEmptySections(t *testing.T) {
	summary := BuildSummary(types.ProfileSections{}, "Developer")

	if summary.CurrentRole != "Not specified" {
		t.Errorf("CurrentRole = %q, want %q", summary.CurrentRole, "Not specified")
	}
	if len(summary.KeySkills) != 0 {
		t.Errorf("KeySkills = %v, want empty", summary.KeySkills)
	}
	if len(summary.ExperienceHighlights) != 0 {
		t.Errorf("ExperienceHighlights = %v, want empty", summary.ExperienceHighlights)
	}
	if len(summary.Achievements) != 0 {
		t.Errorf("Achievements = %v, want empty", summary.Achievements)
	}
}
