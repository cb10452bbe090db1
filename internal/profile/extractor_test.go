package profile

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name               string
		input              string
		wantExperience     []string
		wantEducation      []string
		wantSkills         []string
		wantSummary        string
		wantAchievements   []string
		wantCertifications []string
	}{
		{
			name:           "basic profile with three sections",
			input:          "Experience\nSoftware Engineer at Acme\nSkills\nPython, Go\nEducation\nBS CS",
			wantExperience: []string{"Software Engineer at Acme"},
			wantSkills:     []string{"Python, Go"},
			wantEducation:  []string{"BS CS"},
			wantSummary:    "",
		},
		{
			name:  "empty input yields empty sections",
			input: "",
		},
		{
			name:  "whitespace only input yields empty sections",
			input: "\n  \n\t\n",
		},
		{
			name:  "lines before any header are dropped",
			input: "Jane Doe\nSan Francisco Bay Area\nExperience\nStaff Engineer at Initech",
			wantExperience: []string{
				"Staff Engineer at Initech",
			},
		},
		{
			name:        "summary accumulates as single string with trailing spaces",
			input:       "Summary\nSeasoned backend engineer.\nLoves distributed systems.",
			wantSummary: "Seasoned backend engineer. Loves distributed systems. ",
		},
		{
			name:           "short line containing keyword is a header and never stored",
			input:          "Experience\nWork History\nBuilt the billing platform",
			wantExperience: []string{"Built the billing platform"},
		},
		{
			name:  "long line containing keyword stays content of active section",
			input: "Experience\nGained significant experience building large scale data pipelines",
			wantExperience: []string{
				"Gained significant experience building large scale data pipelines",
			},
		},
		{
			name:  "long line containing keyword before any header is dropped",
			input: "My professional experience spans more than fifteen years\nSkills\nGo",
			wantSkills: []string{
				"Go",
			},
		},
		{
			name:               "all six sections",
			input:              "Summary\nEngineer.\nExperience\nLead at Acme\nEducation\nMS CS\nSkills\nGo, SQL\nAchievements\nShipped v2\nCertifications\nCKA",
			wantSummary:        "Engineer. ",
			wantExperience:     []string{"Lead at Acme"},
			wantEducation:      []string{"MS CS"},
			wantSkills:         []string{"Go, SQL"},
			wantAchievements:   []string{"Shipped v2"},
			wantCertifications: []string{"CKA"},
		},
		{
			name:           "alternate header keywords",
			input:          "About\nWrites code.\nExpertise\nKubernetes\nWork history\nSRE at Acme\nAwards\nTop performer",
			wantSummary:    "Writes code. ",
			wantSkills:     []string{"Kubernetes"},
			wantExperience: []string{"SRE at Acme"},
			// "Awards" matches the achievements rule via "award"
			wantAchievements: []string{"Top performer"},
		},
		{
			name:  "experience rule wins over later rules on shared header",
			input: "Experience and Education\nSomething ambiguous",
			wantExperience: []string{
				"Something ambiguous",
			},
		},
		{
			name:           "header lines are trimmed before the length test",
			input:          "   Experience   \nEngineer at Acme",
			wantExperience: []string{"Engineer at Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)

			checkSection(t, "experience", got.Experience, tt.wantExperience)
			checkSection(t, "education", got.Education, tt.wantEducation)
			checkSection(t, "skills", got.Skills, tt.wantSkills)
			checkSection(t, "achievements", got.Achievements, tt.wantAchievements)
			checkSection(t, "certifications", got.Certifications, tt.wantCertifications)

			if got.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSummary)
			}
		})
	}
}

func checkSection(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

// Every stored line must appear in the input as a non-empty trimmed line,
// and header lines must never be stored.
func TestExtractStoredLinesComeFromInput(t *testing.T) {
	input := "Noise before headers\nExperience\nEngineer at Acme\nLed migration to Go\nSkills\nGo\nSummary\nBuilds things."
	sections := Extract(input)

	inputLines := make(map[string]bool)
	for _, line := range strings.Split(input, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			inputLines[trimmed] = true
		}
	}

	var stored []string
	stored = append(stored, sections.Experience...)
	stored = append(stored, sections.Education...)
	stored = append(stored, sections.Skills...)
	stored = append(stored, sections.Achievements...)
	stored = append(stored, sections.Certifications...)

	for _, line := range stored {
		if !inputLines[line] {
			t.Errorf("stored line %q does not appear in input", line)
		}
		if matchHeader(line) != "" {
			t.Errorf("header line %q was stored as content", line)
		}
	}
}

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain experience header", "Experience", "experience"},
		{"work history header", "Work History", "experience"},
		{"education header", "Education", "education"},
		{"skills header", "Skills & Endorsements", "skills"},
		{"technologies header", "Technologies", "skills"},
		{"summary header", "About", "summary"},
		{"certifications header", "Licenses", "certifications"},
		{"exactly 30 chars is not a header", strings.Repeat("x", 24) + "skills", ""},
		{"29 chars with keyword is a header", strings.Repeat("x", 23) + "skills", "skills"},
		{"long sentence with keyword is not a header", "I have extensive experience with Go services", ""},
		{"no keyword", "Jane Doe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(matchHeader(tt.line))
			if got != tt.want {
				t.Errorf("matchHeader(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func BenchmarkExtract(b *testing.B) {
	input := strings.Repeat("Experience\nEngineer at Acme building large scale systems\nSkills\nGo, Python, SQL\n", 20)
	for b.Loop() {
		Extract(input)
	}
}
