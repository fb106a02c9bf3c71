package caricature

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/replicate/replicate-go"

	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// Model pins for the hosted provider. SDXL is the quality path; flux-schnell
// is the safe model used only after a content-policy rejection.
const (
	sdxlModel = "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"
	fluxModel = "black-forest-labs/flux-schnell:bf2f2e683d03a9549f484a37a0df1581072b17c0b0db65c2b1526a3557ddbaf9"
)

// HostedGenerator renders portraits through the Replicate API.
type HostedGenerator struct {
	client *replicate.Client
	run    func(ctx context.Context, model string, input replicate.PredictionInput) (string, error)
}

func NewHostedGenerator(token string) (*HostedGenerator, error) {
	client, err := replicate.NewClient(replicate.WithToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create replicate client: %w", err)
	}
	g := &HostedGenerator{client: client}
	g.run = g.runReplicate
	return g, nil
}

func (g *HostedGenerator) Name() string { return "replicate" }

// Generate runs SDXL with the profile-derived prompt. A content-policy
// rejection gets exactly one retry on the safe model with the generic safe
// prompt; every other failure is handed back to the chain.
func (g *HostedGenerator) Generate(ctx context.Context, req *schema.ImageGenerationRequest) (*schema.ImageGenerationResult, error) {
	prompt := BuildPrompt(req)

	imageURL, err := g.run(ctx, sdxlModel, replicate.PredictionInput{
		"prompt":              prompt,
		"negative_prompt":     negativePrompt,
		"width":               1024,
		"height":              1024,
		"num_inference_steps": 50,
		"guidance_scale":      8.0,
		"scheduler":           "K_EULER",
		"seed":                rand.IntN(1000000),
	})
	if err == nil {
		return &schema.ImageGenerationResult{Success: true, ImageURL: imageURL, Prompt: prompt}, nil
	}

	if !isContentPolicy(err) {
		return nil, err
	}

	log.Warn("hosted model rejected prompt, retrying with safe model", "error", err)
	safeURL, safeErr := g.run(ctx, fluxModel, replicate.PredictionInput{
		"prompt":              safePrompt,
		"width":               1024,
		"height":              1024,
		"num_outputs":         1,
		"num_inference_steps": 8,
		"guidance_scale":      3.5,
		"seed":                rand.IntN(1000000),
	})
	if safeErr != nil {
		return nil, fmt.Errorf("safe model failed after content-policy rejection: %w", safeErr)
	}

	return &schema.ImageGenerationResult{Success: true, ImageURL: safeURL, Prompt: safePrompt}, nil
}

func (g *HostedGenerator) runReplicate(ctx context.Context, model string, input replicate.PredictionInput) (string, error) {
	output, err := g.client.Run(ctx, model, input, nil)
	if err != nil {
		return "", fmt.Errorf("replicate run failed: %w", err)
	}
	return firstImageURL(output)
}

// firstImageURL pulls the first URL out of a prediction output, which may be a
// bare string or a list of strings.
func firstImageURL(output replicate.PredictionOutput) (string, error) {
	switch v := output.(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				return s, nil
			}
		}
	}
	return "", errors.New("prediction output contained no image URL")
}

// isContentPolicy reports whether the provider declined the prompt on
// acceptable-use grounds rather than failing operationally.
func isContentPolicy(err error) bool {
	return err != nil && utils.StringContains(err.Error(), false, "nsfw")
}
