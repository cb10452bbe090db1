package profile

import (
	"strings"

	"outreachr/internal/types"
)

const (
	maxKeySkills     = 5
	maxHighlights    = 3
	maxEducation     = 2
	defaultRoleValue = "Not specified"
)

// BuildSummary condenses extracted sections into the structured digest the
// message composer consumes. Experience highlights carry their relevance
// score and matching points for the target position.
func BuildSummary(sections types.ProfileSections, targetPosition string) types.ProfileSummary {
	summary := types.ProfileSummary{
		CurrentRole:    defaultRoleValue,
		KeySkills:      head(sections.Skills, maxKeySkills),
		Achievements:   ExtractAchievements(sections.Experience),
		Education:      head(sections.Education, maxEducation),
		Certifications: sections.Certifications,
		Summary:        strings.TrimSpace(sections.Summary),
	}

	if len(sections.Experience) > 0 {
		summary.CurrentRole = sections.Experience[0]
	}

	for _, result := range ScoreRelevance(sections.Experience, targetPosition) {
		summary.ExperienceHighlights = append(summary.ExperienceHighlights, types.ExperienceHighlight{
			Entry:          result.Entry,
			Score:          result.Score,
			MatchingPoints: result.MatchingPoints,
		})
	}

	return summary
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
