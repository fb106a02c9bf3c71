package caricature

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/webp"

	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// LocalGenerator calls a locally hosted Stable Diffusion WebUI
// (Automatic1111). It runs a faster, lower-resolution configuration than the
// hosted path and stores results on disk as webp.
type LocalGenerator struct {
	baseURL  string
	imageDir string
	client   *http.Client
}

func NewLocalGenerator(baseURL, imageDir string) *LocalGenerator {
	return &LocalGenerator{
		baseURL:  baseURL,
		imageDir: imageDir,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (g *LocalGenerator) Name() string { return "local-sd" }

type txt2imgRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
	CfgScale       int    `json:"cfg_scale"`
	SamplerName    string `json:"sampler_name"`
	BatchSize      int    `json:"batch_size"`
	NIter          int    `json:"n_iter"`
}

type txt2imgResponse struct {
	Images []string `json:"images"`
}

func (g *LocalGenerator) Generate(ctx context.Context, req *schema.ImageGenerationRequest) (*schema.ImageGenerationResult, error) {
	prompt := BuildPrompt(req)

	body, err := json.Marshal(txt2imgRequest{
		Prompt:         prompt,
		NegativePrompt: localNegativePrompt,
		Width:          512,
		Height:         512,
		Steps:          30,
		CfgScale:       7,
		SamplerName:    "DPM++ 2M Karras",
		BatchSize:      1,
		NIter:          1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal txt2img request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/sdapi/v1/txt2img", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create txt2img request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call local stable diffusion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("local stable diffusion returned status %d", resp.StatusCode)
	}

	var parsed txt2imgResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode txt2img response: %w", err)
	}
	if len(parsed.Images) == 0 {
		return nil, errors.New("local stable diffusion returned no images")
	}

	imageURL, err := g.saveWebP(parsed.Images[0], req.CharacterInfo)
	if err != nil {
		return nil, err
	}

	return &schema.ImageGenerationResult{Success: true, ImageURL: imageURL, Prompt: prompt}, nil
}

// saveWebP decodes the base64 PNG payload, re-encodes it as webp under the
// image directory and returns the path it will be served from.
func (g *LocalGenerator) saveWebP(encoded string, profile *schema.CharacterProfile) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode png: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 95}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	if err := os.MkdirAll(g.imageDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image dir: %w", err)
	}

	name := utils.SanitizeFilename(profile.Name)
	if name == "" {
		name = "character"
	}
	filename := fmt.Sprintf("%s-%s.webp", name, profile.ID)
	if err := os.WriteFile(filepath.Join(g.imageDir, filename), buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return "/images/caricatures/" + filename, nil
}
