package ai

// LengthGuides maps a message length to the instruction passed to the
// composer.
var LengthGuides = map[string]string{
	"brief":    "Keep the message concise, around 2-3 sentences.",
	"standard": "Write a standard-length message of about 4-5 sentences.",
	"detailed": "Create a comprehensive message with 6-7 sentences.",
}

// DefaultSystemPrompt is the default system instruction for message
// composition.
const DefaultSystemPrompt = `You are an experienced technical recruiter who writes personalized, engaging outreach messages.`

// DefaultUserPrompt is the default user prompt template for message
// composition. Placeholders, in order: target position, profile summary
// JSON, tone, length guide, company highlights.
const DefaultUserPrompt = `As a technical recruiter, write a personalized LinkedIn outreach message for a %s position.

Profile Information:
%s

Requirements:
1. Tone: %s
2. Length: %s
3. Must mention specific aspects of their background that make them a good fit
4. Include a clear call to action
5. Keep it professional but conversational
6. Don't use cliche recruiting phrases
7. Make specific references to their experience and skills

Company highlights to weave in where natural:
%s

Format the message ready to send, starting with "Hi [Name]" and ending with a signature.`

// noHighlights substitutes for an empty company highlights field.
const noHighlights = "None provided."
