package caricature

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/replicate/replicate-go"

	"carichat/pkg/schema"
)

type fakeGenerator struct {
	name   string
	result *schema.ImageGenerationResult
	err    error
	calls  int
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(context.Context, *schema.ImageGenerationRequest) (*schema.ImageGenerationResult, error) {
	f.calls++
	return f.result, f.err
}

func TestChainStopsAtFirstSuccess(t *testing.T) {
	first := &fakeGenerator{name: "first", result: &schema.ImageGenerationResult{Success: true, ImageURL: "https://example.com/a.png"}}
	second := &fakeGenerator{name: "second", result: &schema.ImageGenerationResult{Success: true, ImageURL: "https://example.com/b.png"}}

	result := NewChain(first, second).Generate(context.Background(), request(schema.Appearance{}))

	if result.ImageURL != "https://example.com/a.png" {
		t.Errorf("expected first generator's image, got %q", result.ImageURL)
	}
	if second.calls != 0 {
		t.Errorf("second generator should not run after a success, ran %d times", second.calls)
	}
}

func TestChainAdvancesPastFailures(t *testing.T) {
	first := &fakeGenerator{name: "first", err: errors.New("boom")}
	second := &fakeGenerator{name: "second", result: &schema.ImageGenerationResult{Success: true, ImageURL: "https://example.com/b.png"}}

	result := NewChain(first, second).Generate(context.Background(), request(schema.Appearance{}))

	if first.calls != 1 || second.calls != 1 {
		t.Errorf("expected one call each, got %d and %d", first.calls, second.calls)
	}
	if !result.Success || result.ImageURL != "https://example.com/b.png" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestChainAlwaysSucceedsWithPlaceholder(t *testing.T) {
	hosted := &fakeGenerator{name: "hosted", err: errors.New("provider down")}
	local := &fakeGenerator{name: "local", err: errors.New("connection refused")}

	req := request(schema.Appearance{})
	req.CharacterInfo.Name = "Alex"
	result := NewChain(hosted, local, PlaceholderGenerator{}).Generate(context.Background(), req)

	if !result.Success {
		t.Fatalf("chain with placeholder must not fail: %+v", result)
	}
	if !strings.Contains(result.ImageURL, "ui-avatars.com") {
		t.Errorf("expected placeholder URL, got %q", result.ImageURL)
	}
	if !strings.Contains(result.ImageURL, "name=Alex") {
		t.Errorf("expected encoded name in %q", result.ImageURL)
	}
}

func TestPlaceholderEncodesName(t *testing.T) {
	req := request(schema.Appearance{})
	req.CharacterInfo.Name = "홍 길동"

	result, err := PlaceholderGenerator{}.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("placeholder must never fail: %v", err)
	}
	if strings.Contains(result.ImageURL, " ") {
		t.Errorf("placeholder URL not encoded: %q", result.ImageURL)
	}
}

func TestHostedGeneratorSafeRetryOnContentPolicy(t *testing.T) {
	var models []string
	g := &HostedGenerator{run: func(_ context.Context, model string, input replicate.PredictionInput) (string, error) {
		models = append(models, model)
		if model == sdxlModel {
			return "", errors.New("NSFW content detected")
		}
		if input["prompt"] != safePrompt {
			t.Errorf("safe retry must use the generic safe prompt, got %v", input["prompt"])
		}
		return "https://example.com/safe.png", nil
	}}

	result, err := g.Generate(context.Background(), request(schema.Appearance{}))
	if err != nil {
		t.Fatalf("expected safe retry to succeed: %v", err)
	}
	if len(models) != 2 || models[0] != sdxlModel || models[1] != fluxModel {
		t.Errorf("expected sdxl then flux, got %v", models)
	}
	if result.Prompt != safePrompt {
		t.Errorf("result should carry the prompt actually used, got %q", result.Prompt)
	}
}

func TestHostedGeneratorNoRetryOnOtherErrors(t *testing.T) {
	var models []string
	g := &HostedGenerator{run: func(_ context.Context, model string, _ replicate.PredictionInput) (string, error) {
		models = append(models, model)
		return "", errors.New("rate limit exceeded")
	}}

	if _, err := g.Generate(context.Background(), request(schema.Appearance{})); err == nil {
		t.Fatal("expected error to propagate")
	}
	if len(models) != 1 || models[0] != sdxlModel {
		t.Errorf("safe model must not run for operational failures, got %v", models)
	}
}

func TestFirstImageURL(t *testing.T) {
	if url, err := firstImageURL([]any{"https://example.com/a.png"}); err != nil || url != "https://example.com/a.png" {
		t.Errorf("got %q, %v", url, err)
	}
	if url, err := firstImageURL("https://example.com/b.png"); err != nil || url != "https://example.com/b.png" {
		t.Errorf("got %q, %v", url, err)
	}
	if _, err := firstImageURL([]any{}); err == nil {
		t.Error("empty output should error")
	}
	if _, err := firstImageURL(map[string]any{}); err == nil {
		t.Error("unexpected output shape should error")
	}
}

func TestIsContentPolicy(t *testing.T) {
	if !isContentPolicy(errors.New("prediction failed: NSFW content")) {
		t.Error("NSFW marker should be recognized")
	}
	if isContentPolicy(errors.New("connection reset")) {
		t.Error("operational errors are not content-policy rejections")
	}
	if isContentPolicy(nil) {
		t.Error("nil error is not a rejection")
	}
}
