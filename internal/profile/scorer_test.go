package profile

import (
	"reflect"
	"testing"
)

func TestScoreRelevance(t *testing.T) {
	tests := []struct {
		name           string
		entries        []string
		targetPosition string
		wantScores     []int
	}{
		{
			name:           "empty experience returns empty results",
			entries:        nil,
			targetPosition: "Senior Developer",
			wantScores:     []int{},
		},
		{
			name:           "developer profile matches software engineering entry",
			entries:        []string{"Built scalable backend systems using Python and Go"},
			targetPosition: "Senior Developer",
			// no developer keyword appears in the entry text itself
			wantScores: []int{40},
		},
		{
			name:           "multiple keyword matches raise the score",
			entries:        []string{"Software development and engineering on technical platforms"},
			targetPosition: "Developer",
			// software, development, engineering, technical = 4 matches
			wantScores: []int{100},
		},
		{
			name:           "score caps at 100",
			entries:        []string{"software development programming coding engineering technical"},
			targetPosition: "developer",
			wantScores:     []int{100},
		},
		{
			name:           "unknown role family scores base only",
			entries:        []string{"Software development and engineering"},
			targetPosition: "Ornithologist",
			wantScores:     []int{40},
		},
		{
			name:           "manager family",
			entries:        []string{"Team leadership and roadmap planning"},
			targetPosition: "Engineering Manager",
			// team, leadership, planning = 3 matches
			wantScores: []int{100},
		},
		{
			name:           "analyst family",
			entries:        []string{"Data analysis and reporting"},
			targetPosition: "Business Analyst",
			// data, analysis, reporting = 3 matches
			wantScores: []int{100},
		},
		{
			name: "only first three entries are scored",
			entries: []string{
				"first entry",
				"second entry",
				"third entry",
				"fourth entry is ignored",
			},
			targetPosition: "Developer",
			wantScores:     []int{40, 40, 40},
		},
		{
			name:           "developer wins over manager when both appear",
			entries:        []string{"software work"},
			targetPosition: "Developer Manager",
			// developer keywords selected, "software" matches
			wantScores: []int{60},
		},
		{
			name:           "case insensitive family selection",
			entries:        []string{"coding all day"},
			targetPosition: "SENIOR DEVELOPER",
			wantScores:     []int{60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ScoreRelevance(tt.entries, tt.targetPosition)

			if results == nil {
				t.Fatal("ScoreRelevance returned nil, want empty slice")
			}
			if len(results) != len(tt.wantScores) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.wantScores))
			}
			for i, want := range tt.wantScores {
				got := results[i]
				if got.Score != want {
					t.Errorf("result[%d].Score = %d, want %d", i, got.Score, want)
				}
				if got.Score < scoreBase || got.Score > scoreCap {
					t.Errorf("result[%d].Score = %d outside [%d, %d]", i, got.Score, scoreBase, scoreCap)
				}
				if len(got.MatchingPoints) == 0 {
					t.Errorf("result[%d].MatchingPoints is empty", i)
				}
			}
		})
	}
}

func TestMatchingPoints(t *testing.T) {
	devKeywords := []string{"software", "development", "programming", "coding", "engineering", "technical"}

	tests := []struct {
		name     string
		entry    string
		keywords []string
		want     []string
	}{
		{
			name:     "keeps only sentences containing a keyword",
			entry:    "Led software migrations. Ran the book club. Owned coding standards",
			keywords: devKeywords,
			want:     []string{"Led software migrations", "Owned coding standards"},
		},
		{
			name:     "falls back to whole entry when nothing qualifies",
			entry:    "Ran the book club. Organized offsites",
			keywords: devKeywords,
			want:     []string{"Ran the book club. Organized offsites"},
		},
		{
			name:     "empty keyword set falls back to whole entry",
			entry:    "Shipped software weekly",
			keywords: nil,
			want:     []string{"Shipped software weekly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchingPoints(tt.entry, tt.keywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matchingPoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectKeywords(t *testing.T) {
	tests := []struct {
		name      string
		position  string
		wantFirst string
		wantEmpty bool
	}{
		{"developer position", "Senior Developer", "software", false},
		{"manager position", "Product Manager", "leadership", false},
		{"analyst position", "Data Analyst", "analysis", false},
		{"general position", "Recruiter", "", true},
		{"empty position", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectKeywords(tt.position)
			if tt.wantEmpty {
				if len(got) != 0 {
					t.Errorf("selectKeywords(%q) = %v, want empty", tt.position, got)
				}
				return
			}
			if len(got) == 0 || got[0] != tt.wantFirst {
				t.Errorf("selectKeywords(%q) = %v, want set starting with %q", tt.position, got, tt.wantFirst)
			}
		})
	}
}

func BenchmarkScoreRelevance(b *testing.B) {
	entries := []string{
		"Built scalable backend systems using Python and Go",
		"Led software development for the payments team",
		"Improved technical onboarding. Mentored junior engineers",
	}
	for b.Loop() {
		ScoreRelevance(entries, "Senior Developer")
	}
}
