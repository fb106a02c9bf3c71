package caricature

import (
	"context"
	"fmt"
	"net/url"

	"carichat/pkg/schema"
)

// PlaceholderGenerator derives an avatar URL from the character's name. It is
// the terminal state of the chain and cannot fail.
type PlaceholderGenerator struct{}

func (PlaceholderGenerator) Name() string { return "placeholder" }

func (PlaceholderGenerator) Generate(_ context.Context, req *schema.ImageGenerationRequest) (*schema.ImageGenerationResult, error) {
	name := url.QueryEscape(req.CharacterInfo.Name)
	return &schema.ImageGenerationResult{
		Success:  true,
		ImageURL: fmt.Sprintf("https://ui-avatars.com/api/?name=%s&size=512&background=random&color=fff&format=png", name),
		Prompt:   "placeholder avatar (image generation API not configured)",
	}, nil
}
