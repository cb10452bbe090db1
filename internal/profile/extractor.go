// Package profile implements the pure text heuristics of the outreach
// pipeline: section extraction, relevance scoring, achievement detection
// and profile summary building. Every function here is total and
// deterministic over any string input; no I/O, no shared state.
package profile

import (
	"strings"

	"outreachr/internal/types"
)

// maxHeaderLen distinguishes a section header from body content: a line
// only counts as a header when it contains a trigger keyword and its
// trimmed length is under this limit. Longer lines mentioning a section
// word are treated as content of the active section.
const maxHeaderLen = 30

// sectionRule binds a section label to its trigger keywords. Rules are
// evaluated in order; the first match wins.
type sectionRule struct {
	label    types.SectionLabel
	keywords []string
}

var sectionRules = []sectionRule{
	{types.SectionExperience, []string{"experience", "work history"}},
	{types.SectionEducation, []string{"education"}},
	{types.SectionSkills, []string{"skills", "expertise", "technologies"}},
	{types.SectionSummary, []string{"summary", "about", "overview"}},
	{types.SectionAchievements, []string{"achievements", "accomplishment", "award"}},
	{types.SectionCertifications, []string{"certifications", "license", "qualification"}},
}

// matchHeader returns the section label a line introduces, or "" when the
// line is not a header.
func matchHeader(line string) types.SectionLabel {
	if len(line) >= maxHeaderLen {
		return ""
	}
	lower := strings.ToLower(line)
	for _, rule := range sectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return ""
}

// Extract scans profile text top to bottom and buckets each non-empty line
// into the section whose header was most recently seen. Header lines are
// never stored; lines before the first header are dropped. The summary
// section accumulates as a single string, every other section keeps its
// lines in input order.
func Extract(profileText string) types.ProfileSections {
	var sections types.ProfileSections
	var current types.SectionLabel

	for _, line := range strings.Split(profileText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if label := matchHeader(line); label != "" {
			current = label
			continue
		}

		switch current {
		case types.SectionExperience:
			sections.Experience = append(sections.Experience, line)
		case types.SectionEducation:
			sections.Education = append(sections.Education, line)
		case types.SectionSkills:
			sections.Skills = append(sections.Skills, line)
		case types.SectionSummary:
			sections.Summary += line + " "
		case types.SectionAchievements:
			sections.Achievements = append(sections.Achievements, line)
		case types.SectionCertifications:
			sections.Certifications = append(sections.Certifications, line)
		}
	}

	return sections
}
