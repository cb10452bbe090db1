package profile

import (
	"reflect"
	"testing"
)

func TestExtractAchievements(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []string
	}{
		{
			name:    "percentage figure qualifies",
			entries: []string{"increased revenue by 20%"},
			want:    []string{"increased revenue by 20%"},
		},
		{
			name:    "dollar amount qualifies",
			entries: []string{"Saved $2M in infrastructure costs"},
			want:    []string{"Saved $2M in infrastructure costs"},
		},
		{
			name: "achievement verbs qualify case-insensitively",
			entries: []string{
				"Launched the mobile app",
				"LED the platform team",
				"Attended weekly standups",
			},
			want: []string{"Launched the mobile app", "LED the platform team"},
		},
		{
			name: "no indicators returns empty",
			entries: []string{
				"Responsible for the build pipeline",
				"Worked with stakeholders",
			},
			want: nil,
		},
		{
			name: "original order preserved and truncated to three",
			entries: []string{
				"Improved latency by 40%",
				"Nothing notable here",
				"Created the on-call rotation",
				"Managed a team of six",
				"Launched two products",
			},
			want: []string{
				"Improved latency by 40%",
				"Created the on-call rotation",
				"Managed a team of six",
			},
		},
		{
			name:    "empty input",
			entries: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAchievements(tt.entries)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAchievements() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkExtractAchievements(b *testing.B) {
	entries := []string{
		"Improved latency by 40%",
		"Nothing notable here",
		"Created the on-call rotation",
		"Managed a team of six",
	}
	for b.Loop() {
		ExtractAchievements(entries)
	}
}
