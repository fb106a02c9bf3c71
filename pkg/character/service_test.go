package character

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3"
)

type fakeInferencer struct {
	reply string
	err   error

	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeInferencer) Infer(_ context.Context, _ *openai.ChatCompletionNewParams, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

func TestExtractProfileParsesJSON(t *testing.T) {
	inf := &fakeInferencer{reply: `여기 결과입니다:
{"name":"김철수","appearance":{"age":"34세","gender":"남성"},"personality":{"traits":["성실함"]},"background":{"occupation":"교사"}}
이상입니다.`}

	profile, err := NewService(inf).ExtractProfile(context.Background(), "문서 텍스트")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "김철수" {
		t.Errorf("name = %q", profile.Name)
	}
	if profile.Appearance.Age != "34세" || profile.Appearance.Gender != "남성" {
		t.Errorf("appearance = %+v", profile.Appearance)
	}
	if len(profile.Personality.Traits) != 1 || profile.Personality.Traits[0] != "성실함" {
		t.Errorf("traits = %v", profile.Personality.Traits)
	}
	if profile.Background.Occupation != "교사" {
		t.Errorf("occupation = %q", profile.Background.Occupation)
	}
	if profile.ID == "" {
		t.Error("profile must get an ID")
	}
	if profile.CreatedAt.IsZero() || profile.UpdatedAt.IsZero() {
		t.Error("profile must get timestamps")
	}
}

func TestExtractProfileFencedJSON(t *testing.T) {
	inf := &fakeInferencer{reply: "```json\n{\"name\":\"이영희\",\"appearance\":{},\"personality\":{\"traits\":[]},\"background\":{}}\n```"}

	profile, err := NewService(inf).ExtractProfile(context.Background(), "텍스트")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "이영희" {
		t.Errorf("name = %q", profile.Name)
	}
}

func TestExtractProfileDefaultOnNoJSON(t *testing.T) {
	inf := &fakeInferencer{reply: "이 텍스트에는 인물 정보가 없는 것 같습니다."}

	profile, err := NewService(inf).ExtractProfile(context.Background(), "텍스트")
	if err != nil {
		t.Fatalf("a reply without JSON must degrade, not fail: %v", err)
	}
	if profile.Name != defaultName {
		t.Errorf("name = %q, want %q", profile.Name, defaultName)
	}
	if profile.Personality.Traits == nil || len(profile.Personality.Traits) != 0 {
		t.Errorf("traits must be empty but present, got %v", profile.Personality.Traits)
	}
	if profile.ID == "" {
		t.Error("default profile still gets an ID")
	}
}

func TestExtractProfileDefaultOnMalformedJSON(t *testing.T) {
	inf := &fakeInferencer{reply: `{"name": "김`}

	profile, err := NewService(inf).ExtractProfile(context.Background(), "텍스트")
	if err != nil {
		t.Fatalf("malformed JSON must degrade, not fail: %v", err)
	}
	if profile.Name != defaultName {
		t.Errorf("name = %q, want %q", profile.Name, defaultName)
	}
}

func TestExtractProfilePropagatesTransportErrors(t *testing.T) {
	inf := &fakeInferencer{err: errors.New("connection refused")}

	if _, err := NewService(inf).ExtractProfile(context.Background(), "텍스트"); err == nil {
		t.Fatal("transport failures are fatal for the request")
	}
}

func TestExtractProfileSendsDocumentAsUserMessage(t *testing.T) {
	inf := &fakeInferencer{reply: `{"name":"x","appearance":{},"personality":{"traits":[]},"background":{}}`}

	_, err := NewService(inf).ExtractProfile(context.Background(), "원본 문서 내용")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inf.lastUser != "원본 문서 내용" {
		t.Errorf("document text should be the user message, got %q", inf.lastUser)
	}
	if !strings.Contains(inf.lastSystem, "JSON") {
		t.Errorf("system prompt should request JSON, got %q", inf.lastSystem)
	}
}
