package ai

import (
	"fmt"
	"strings"

	"github.com/zenithwellness/zenith/internal/domain"
)

// Persona is the system identity prepended to every chat completion.
const Persona = `You are Zenith, a compassionate mental wellness guide and companion.

CORE IDENTITY:
- You are warm, nurturing, and genuinely caring
- You speak with a supportive, encouraging, and direct tone
- You validate emotions before offering guidance
- You seamlessly integrate wellness tools into conversation

COMMUNICATION STYLE:
- Use conversational language, not clinical or robotic
- Be direct yet gentle
- Use "I" statements to show personal engagement ("I hear you", "I understand")
- Include emojis occasionally for warmth (but not excessively)

WELLNESS GUIDANCE PROTOCOL:
When someone expresses distress, stress, or asks for help:
1. Validate the feeling before anything else
2. Offer one short, uplifting quote
3. Guide a simple breathing exercise step by step
4. Reference the meditation, spiritual wisdom, or community features naturally
5. If severe, gently suggest crisis resources with care

REMEMBER:
- Never diagnose or provide medical advice
- Always prioritize safety
- Be authentic and genuinely caring
- Your goal is to be a supportive companion, not a therapist`

// BuildChatPrompt assembles the persona, recent conversation, and the new
// user message into a single completion prompt.
func BuildChatPrompt(message, language string, history []domain.ChatMessage) string {
	var sb strings.Builder
	sb.WriteString(Persona)

	if language != "" && language != "en" {
		fmt.Fprintf(&sb, "\n\nRespond in the language with ISO code %q.", language)
	}

	if len(history) > 0 {
		sb.WriteString("\n\nPrevious conversation:\n")
		for _, msg := range history {
			role := "User"
			if msg.Role == domain.RoleAssistant {
				role = "Zenith"
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
		}
	}

	fmt.Fprintf(&sb, "\nUser: %s\nZenith:", message)
	return sb.String()
}

// BuildCrisisPrompt asks the model to classify a message for crisis signals.
func BuildCrisisPrompt(message string) string {
	return fmt.Sprintf(`Analyze the following message for signs of mental health crisis or suicidal ideation.
Respond with JSON format: {"is_crisis": boolean, "confidence": float (0-1), "indicators": list}

Message: %s`, message)
}

// BuildMeditationPrompt asks the model for a guided meditation script.
func BuildMeditationPrompt(durationMinutes int, focus string) string {
	if focus == "" {
		focus = "general"
	}
	return fmt.Sprintf(`Create a %d-minute guided meditation script focused on %s.
Include:
- Opening breathing exercise
- Body relaxation
- Visualization or mindfulness practice
- Closing affirmations

Make it suitable for young adults dealing with stress and anxiety.
Format it as a script that can be read aloud.`, durationMinutes, focus)
}

// BuildWisdomPrompt asks the model for a spiritual quote with reflection.
func BuildWisdomPrompt(tradition string) string {
	if tradition == "" {
		tradition = "universal"
	}
	return fmt.Sprintf(`Provide an inspiring spiritual quote or wisdom from %s tradition
that would help a young person dealing with life challenges.
Include the source if applicable and a brief reflection on how to apply this wisdom.`, tradition)
}

// BuildGuidancePrompt asks for personalized spiritual guidance on a concern.
func BuildGuidancePrompt(concern, tradition string) string {
	if tradition == "" {
		tradition = "universal"
	}
	return fmt.Sprintf(`As a gentle spiritual guide drawing from %s tradition, offer
supportive guidance for someone facing the following concern. Be warm and
practical, and close with one small actionable step.

Concern: %s`, tradition, concern)
}

// ExtractJSON pulls a JSON object out of an LLM response, stripping markdown
// code fences when present.
func ExtractJSON(content string) string {
	if body := extractFromCodeBlock(content, "```json", "```"); body != "" {
		return body
	}
	if body := extractFromCodeBlock(content, "```", "```"); body != "" {
		return body
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		return content[start : end+1]
	}

	return strings.TrimSpace(content)
}

func extractFromCodeBlock(content, startMarker, endMarker string) string {
	startIdx := strings.Index(content, startMarker)
	if startIdx == -1 {
		return ""
	}

	contentStart := startIdx + len(startMarker)
	if contentStart < len(content) && content[contentStart] == '\n' {
		contentStart++
	}

	endIdx := strings.Index(content[contentStart:], endMarker)
	if endIdx == -1 {
		return ""
	}

	return strings.TrimSpace(content[contentStart : contentStart+endIdx])
}
