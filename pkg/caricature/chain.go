package caricature

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"carichat/pkg/schema"
)

// Config selects which providers join the chain. A token that does not look
// like a real Replicate token skips the hosted state entirely.
type Config struct {
	ReplicateToken string
	LocalBaseURL   string
	ImageDir       string
}

// Chain tries each generator in order and stops at the first success. With the
// placeholder as terminal state it always produces a successful result.
type Chain struct {
	generators []Generator
}

func NewChain(generators ...Generator) *Chain {
	return &Chain{generators: generators}
}

// NewChainFromConfig assembles hosted, local and placeholder generators from
// whichever providers are configured.
func NewChainFromConfig(cfg Config) *Chain {
	var generators []Generator

	if strings.HasPrefix(cfg.ReplicateToken, "r8_") {
		hosted, err := NewHostedGenerator(cfg.ReplicateToken)
		if err != nil {
			log.Warn("hosted image provider unavailable", "error", err)
		} else {
			generators = append(generators, hosted)
		}
	}

	if cfg.LocalBaseURL != "" {
		imageDir := cfg.ImageDir
		if imageDir == "" {
			imageDir = "images/caricatures"
		}
		generators = append(generators, NewLocalGenerator(cfg.LocalBaseURL, imageDir))
	}

	generators = append(generators, PlaceholderGenerator{})
	return NewChain(generators...)
}

// Generate walks the chain. Attempts are strictly sequential: each provider
// only runs after the previous one's definite failure, and the chain never
// revisits an earlier state.
func (c *Chain) Generate(ctx context.Context, req *schema.ImageGenerationRequest) *schema.ImageGenerationResult {
	for _, g := range c.generators {
		result, err := g.Generate(ctx, req)
		if err != nil {
			log.Warn("image generation attempt failed", "generator", g.Name(), "error", err)
			continue
		}
		if result == nil || !result.Success {
			log.Warn("image generation attempt returned no image", "generator", g.Name())
			continue
		}
		log.Info("image generated", "generator", g.Name(), "character", req.CharacterInfo.Name)
		return result
	}

	// Only reachable when the chain was built without the placeholder.
	return &schema.ImageGenerationResult{Success: false, Error: "all image providers failed"}
}
