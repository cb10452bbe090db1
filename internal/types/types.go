package types

// SectionLabel identifies one labeled bucket of profile text.
type SectionLabel string

const (
	SectionExperience     SectionLabel = "experience"
	SectionEducation      SectionLabel = "education"
	SectionSkills         SectionLabel = "skills"
	SectionSummary        SectionLabel = "summary"
	SectionAchievements   SectionLabel = "achievements"
	SectionCertifications SectionLabel = "certifications"
)

// ProfileSections holds the labeled buckets produced by section extraction.
// Summary is accumulated as a single string; all other sections keep their
// lines in input order.
type ProfileSections struct {
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Skills         []string `json:"skills"`
	Summary        string   `json:"summary"`
	Achievements   []string `json:"achievements"`
	Certifications []string `json:"certifications"`
}

// RelevanceResult scores one experience entry against a target role family.
type RelevanceResult struct {
	Entry          string   `json:"entry"`
	Score          int      `json:"score"` // 0-100, base 40 + 20 per matched keyword
	MatchingPoints []string `json:"matchingPoints"`
}

// ExperienceHighlight is an experience entry annotated with its relevance.
type ExperienceHighlight struct {
	Entry          string   `json:"entry"`
	Score          int      `json:"score"`
	MatchingPoints []string `json:"matchingPoints"`
}

// ProfileSummary is the structured digest of a profile handed to the
// message composer.
type ProfileSummary struct {
	CurrentRole          string                `json:"currentRole"`
	KeySkills            []string              `json:"keySkills"`
	ExperienceHighlights []ExperienceHighlight `json:"experienceHighlights"`
	Achievements         []string              `json:"achievements"`
	Education            []string              `json:"education"`
	Certifications       []string              `json:"certifications"`
	Summary              string                `json:"summary,omitempty"`
}

// ExtractInput represents the input for section extraction
type ExtractInput struct {
	ProfileText string `json:"profileText"`
}

// ScoreInput represents the input for relevance scoring
type ScoreInput struct {
	Experience     []string `json:"experience"`
	TargetPosition string   `json:"targetPosition"`
}

// ComposeMessageInput represents the input for composing an outreach message
type ComposeMessageInput struct {
	ProfileText       string `json:"profileText"`
	TargetPosition    string `json:"targetPosition"`
	CompanyHighlights string `json:"companyHighlights,omitempty"`
	Tone              string `json:"tone"`
	Length            string `json:"length"`
}

// ComposeMessageOutput represents the composed outreach message together
// with the intermediate artifacts used to build it.
type ComposeMessageOutput struct {
	Message        string          `json:"message"`
	TargetPosition string          `json:"targetPosition"`
	Tone           string          `json:"tone"`
	Length         string          `json:"length"`
	Sections       ProfileSections `json:"sections"`
	Summary        ProfileSummary  `json:"summary"`
}

// Message tones accepted by the composer.
const (
	ToneProfessional = "Professional"
	ToneFriendly     = "Friendly"
	ToneCasual       = "Casual"
)

// Message lengths accepted by the composer.
const (
	LengthBrief    = "brief"
	LengthStandard = "standard"
	LengthDetailed = "detailed"
)
