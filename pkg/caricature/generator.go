// Package caricature renders character portraits through an ordered chain of
// image providers: hosted model, local inference server, placeholder avatar.
package caricature

import (
	"context"

	"carichat/pkg/schema"
)

// Generator is a single image provider. A nil-error result means the attempt
// produced a usable image; an error moves the chain to the next provider.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req *schema.ImageGenerationRequest) (*schema.ImageGenerationResult, error)
}
