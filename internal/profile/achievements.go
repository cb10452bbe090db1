package profile

import "strings"

// maxAchievements bounds how many achievement entries are surfaced.
const maxAchievements = 3

// achievementVerbs mark an experience entry as a quantified achievement
// when found case-insensitively, alongside "%" and "$" figures.
var achievementVerbs = []string{
	"increased", "decreased", "improved", "launched",
	"led", "managed", "created", "developed",
}

// ExtractAchievements returns up to three experience entries that read as
// achievements: entries containing a percentage, a dollar amount, or one of
// the achievement verbs. Order follows the input.
func ExtractAchievements(experienceEntries []string) []string {
	var achievements []string
	for _, entry := range experienceEntries {
		if len(achievements) == maxAchievements {
			break
		}
		if isAchievement(entry) {
			achievements = append(achievements, entry)
		}
	}
	return achievements
}

func isAchievement(entry string) bool {
	if strings.Contains(entry, "%") || strings.Contains(entry, "$") {
		return true
	}
	lower := strings.ToLower(entry)
	for _, verb := range achievementVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
