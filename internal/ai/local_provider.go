package ai

import (
	"context"
	"strings"
	"text/template"

	"outreachr/internal/config"
	outreachrErrors "outreachr/internal/errors"
	"outreachr/internal/types"
)

// LocalProvider implements AIProvider with a deterministic template composer.
// It needs no credentials and no network, which makes it the default for
// offline use and for tests.
type LocalProvider struct {
	config *config.OperationAIConfig
	logger *outreachrErrors.Logger
	tmpl   *template.Template
}

// Ensure LocalProvider implements AIProvider
var _ AIProvider = (*LocalProvider)(nil)

const localModelName = "local-template"

const localMessageTemplate = `{{.Greeting}}

{{.Opener}}{{if .SkillsLine}} {{.SkillsLine}}{{end}}{{if .AchievementLine}} {{.AchievementLine}}{{end}}{{if .CompanyLine}}

{{.CompanyLine}}{{end}}

{{.CallToAction}}

{{.Closing}}
{{.Signature}}`

// NewLocalProvider creates a template-backed message composer
func NewLocalProvider(cfg *config.OperationAIConfig, logger *outreachrErrors.Logger) (*LocalProvider, error) {
	tmpl, err := template.New("outreach").Parse(localMessageTemplate)
	if err != nil {
		return nil, outreachrErrors.NewInternalError(outreachrErrors.ErrCodeComposeFailed,
			"Failed to parse local message template", err)
	}

	return &LocalProvider{
		config: cfg,
		logger: logger,
		tmpl:   tmpl,
	}, nil
}

type localMessageData struct {
	Greeting        string
	Opener          string
	SkillsLine      string
	AchievementLine string
	CompanyLine     string
	CallToAction    string
	Closing         string
	Signature       string
}

// ComposeMessage renders the outreach message from the profile summary.
// Token usage is always nil for the local composer.
func (l *LocalProvider) ComposeMessage(_ context.Context, req ComposeRequest) (ComposeResult, *TokenUsage, error) {
	data := l.buildMessageData(req)

	var buf strings.Builder
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return ComposeResult{}, nil, outreachrErrors.NewInternalError(outreachrErrors.ErrCodeComposeFailed,
			"Failed to render outreach message", err)
	}

	l.logger.Debug("Composed message with local template",
		"target_position", req.TargetPosition,
		"tone", req.Tone,
		"length", req.Length,
		"message_length", buf.Len())

	return ComposeResult{Message: buf.String()}, nil, nil
}

func (l *LocalProvider) buildMessageData(req ComposeRequest) localMessageData {
	summary := req.Summary

	data := localMessageData{
		Greeting:  "Hi [Name],",
		Signature: "[Your Name]",
	}

	switch req.Tone {
	case types.ToneFriendly:
		data.Opener = "I came across your profile and was genuinely impressed by your background as " + article(summary.CurrentRole) + " " + summary.CurrentRole + "."
		data.CallToAction = "Would you be open to a quick chat about the " + req.TargetPosition + " role we're hiring for? I'd love to tell you more."
		data.Closing = "Warm regards,"
	case types.ToneCasual:
		data.Greeting = "Hey [Name],"
		data.Opener = "Your experience as " + article(summary.CurrentRole) + " " + summary.CurrentRole + " caught my eye."
		data.CallToAction = "Up for a quick chat about a " + req.TargetPosition + " opening? No pressure either way."
		data.Closing = "Cheers,"
	default:
		data.Opener = "I reviewed your profile and believe your experience as " + article(summary.CurrentRole) + " " + summary.CurrentRole + " is a strong match for the " + req.TargetPosition + " position we are looking to fill."
		data.CallToAction = "If you are open to exploring this opportunity, I would welcome a brief conversation at your convenience."
		data.Closing = "Best regards,"
	}

	// Brief messages stay at opener plus call to action. Standard adds the
	// skills line, detailed adds achievements as well.
	if req.Length != types.LengthBrief {
		if len(summary.KeySkills) > 0 {
			data.SkillsLine = "Your skills in " + joinNaturally(summary.KeySkills) + " stood out in particular."
		}
		if req.Length == types.LengthDetailed && len(summary.Achievements) > 0 {
			data.AchievementLine = "It's clear you deliver results, for example: " + strings.TrimRight(summary.Achievements[0], ".") + "."
		}
	}

	if req.CompanyHighlights != "" {
		data.CompanyLine = "A little about us: " + req.CompanyHighlights
	}

	return data
}

// GetModelInfo reports the local composer as always available
func (l *LocalProvider) GetModelInfo(_ context.Context) *ModelInfo {
	return &ModelInfo{
		Name:      localModelName,
		Available: true,
	}
}

// Close implements AIProvider interface
func (l *LocalProvider) Close() error {
	return nil
}

// article picks "a" or "an" for the role noun phrase
func article(noun string) string {
	trimmed := strings.TrimSpace(strings.ToLower(noun))
	if trimmed == "" {
		return "a"
	}
	switch trimmed[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

// joinNaturally renders a list as "x, y and z"
func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
