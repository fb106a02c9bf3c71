package character

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// excerptLimit bounds how much of the original document rides along in every
// chat prompt.
const excerptLimit = 2000

// fallbackImageIdea is returned when the model cannot write a prompt itself.
const fallbackImageIdea = "caricature style portrait of a person, friendly and warm illustration, cartoon style, professional quality"

// Reply continues the conversation as the character. Provider failures degrade
// to a fixed apology line; chat never surfaces an error to the end user.
func (s *Service) Reply(ctx context.Context, profile *schema.CharacterProfile, message, originalText, history string) string {
	system := fmt.Sprintf(chatPrompt,
		profile.Name,
		FormatAppearance(profile.Appearance),
		FormatPersonality(profile.Personality),
		FormatBackground(profile.Background),
		utils.TruncateRunes(originalText, excerptLimit),
		history,
		profile.Name,
	)

	out, err := s.inf.Infer(ctx, nil, system, message)
	if err != nil {
		log.Error("chat reply failed, sending apology", "character", profile.Name, "error", err)
		return apologyReply
	}

	return strings.TrimSpace(out)
}

// ImagePromptIdea asks the model for an English caricature prompt. Best
// effort: any failure falls back to a generic prompt so image generation can
// proceed with the deterministic builder.
func (s *Service) ImagePromptIdea(ctx context.Context, profile *schema.CharacterProfile) string {
	user := fmt.Sprintf(imageIdeaPrompt,
		profile.Name,
		FormatAppearance(profile.Appearance),
		FormatPersonality(profile.Personality),
		cmp.Or(profile.Background.Occupation, "일반인"),
	)

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(512),
	}

	out, err := s.inf.Infer(ctx, params, "You write concise English image-generation prompts.", user)
	if err != nil {
		log.Warn("image prompt idea failed, using fallback", "error", err)
		return fallbackImageIdea
	}
	return strings.TrimSpace(out)
}
