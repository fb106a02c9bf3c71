package character

import (
	"strings"

	"carichat/pkg/schema"
)

// FormatHistory renders caller-supplied chat history as transcript lines for
// the role-play prompt. User turns are labelled "사용자", everything else
// speaks as the character.
func FormatHistory(messages []schema.ChatMessage, characterName string) string {
	if len(messages) == 0 {
		return ""
	}
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		speaker := characterName
		if msg.Role == "user" {
			speaker = "사용자"
		}
		lines = append(lines, speaker+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
