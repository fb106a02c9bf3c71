// Package character turns raw document text into structured profiles and
// speaks as the extracted character. All model access goes through an
// inference.Inferencer; the package holds no state between requests.
package character

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"
	"github.com/segmentio/ksuid"

	"carichat/pkg/inference"
	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// defaultName is used when the model reply yields no usable profile.
const defaultName = "unknown"

type Service struct {
	inf inference.Inferencer
}

func NewService(inf inference.Inferencer) *Service {
	return &Service{inf: inf}
}

// ExtractProfile asks the model to structure the document text into a profile.
// A reply that cannot be parsed degrades to a near-empty default profile; only
// transport and provider failures are returned as errors.
func (s *Service) ExtractProfile(ctx context.Context, text string) (*schema.CharacterProfile, error) {
	if tokens, err := utils.NumTokensFromMessages(extractPrompt + text); err == nil {
		log.Debug("extracting profile", "chars", len(text), "tokens", tokens)
	}

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(2048),
		ResponseFormat:      schema.ProfileResponseFormat(),
	}

	out, err := s.inf.Infer(ctx, params, extractPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("profile extraction failed: %w", err)
	}

	now := time.Now()
	profile := &schema.CharacterProfile{
		ID:          ksuid.New().String(),
		Name:        defaultName,
		Personality: schema.Personality{Traits: []string{}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	cleaned := utils.CleanJSON(out)
	if cleaned == "" {
		log.Warn("no JSON object in extraction reply, using default profile", "reply", utils.LimitStr(out, 200))
		return profile, nil
	}

	var extracted schema.ExtractedProfile
	if err := json.Unmarshal([]byte(cleaned), &extracted); err != nil {
		log.Warn("failed to parse extraction reply, using default profile", "error", err)
		return profile, nil
	}

	if extracted.Name != "" {
		profile.Name = extracted.Name
	}
	profile.Appearance = extracted.Appearance
	profile.Background = extracted.Background
	profile.Personality = extracted.Personality
	if profile.Personality.Traits == nil {
		profile.Personality.Traits = []string{}
	}

	log.Info("extracted profile", "id", profile.ID, "name", profile.Name, "traits", len(profile.Personality.Traits))
	return profile, nil
}
