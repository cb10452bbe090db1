package profile

import (
	"strings"

	"outreachr/internal/types"
)

const (
	// scoreBase is awarded to every evaluated entry before keyword matches.
	scoreBase = 40
	// scorePerMatch is added for each role keyword found in an entry.
	scorePerMatch = 20
	// scoreCap bounds the final score.
	scoreCap = 100
	// maxScoredEntries limits scoring to the most recent experience.
	maxScoredEntries = 3
)

// roleProfile maps a role family name to the keywords scored against
// experience entries. Families are tested in order against the target
// position; the first whose name appears as a substring wins.
type roleProfile struct {
	family   string
	keywords []string
}

var roleProfiles = []roleProfile{
	{"developer", []string{"software", "development", "programming", "coding", "engineering", "technical"}},
	{"manager", []string{"leadership", "management", "team", "strategy", "planning", "stakeholder"}},
	{"analyst", []string{"analysis", "data", "research", "reporting", "insights", "metrics"}},
}

// selectKeywords picks the keyword set for a target position. Unknown
// positions get the empty "general" set, which scores every entry at the
// base value.
func selectKeywords(targetPosition string) []string {
	lower := strings.ToLower(targetPosition)
	for _, rp := range roleProfiles {
		if strings.Contains(lower, rp.family) {
			return rp.keywords
		}
	}
	return nil
}

// ScoreRelevance scores up to the first three experience entries against a
// target position. Each entry gets a base of 40 plus 20 per matched
// keyword, capped at 100, together with the sentences of the entry that
// contain a keyword (or the whole entry when none do).
func ScoreRelevance(experienceEntries []string, targetPosition string) []types.RelevanceResult {
	keywords := selectKeywords(targetPosition)

	entries := experienceEntries
	if len(entries) > maxScoredEntries {
		entries = entries[:maxScoredEntries]
	}

	results := make([]types.RelevanceResult, 0, len(entries))
	for _, entry := range entries {
		lower := strings.ToLower(entry)

		matches := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		score := scoreBase + scorePerMatch*matches
		if score > scoreCap {
			score = scoreCap
		}

		results = append(results, types.RelevanceResult{
			Entry:          entry,
			Score:          score,
			MatchingPoints: matchingPoints(entry, keywords),
		})
	}

	return results
}

// matchingPoints splits an entry on ". " and keeps the points containing a
// keyword. When nothing qualifies the whole entry is the sole point.
func matchingPoints(entry string, keywords []string) []string {
	var points []string
	for _, point := range strings.Split(entry, ". ") {
		lower := strings.ToLower(point)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				points = append(points, point)
				break
			}
		}
	}
	if len(points) == 0 {
		points = []string{entry}
	}
	return points
}
