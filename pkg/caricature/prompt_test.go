package caricature

import (
	"strings"
	"testing"

	"carichat/pkg/schema"
)

func request(a schema.Appearance) *schema.ImageGenerationRequest {
	return &schema.ImageGenerationRequest{
		CharacterInfo: &schema.CharacterProfile{
			ID:         "test",
			Name:       "Test",
			Appearance: a,
		},
		Style: "caricature",
		Mood:  "friendly",
	}
}

func TestBuildPromptEmptyAppearance(t *testing.T) {
	prompt := BuildPrompt(request(schema.Appearance{}))

	for _, fragment := range []string{"male man", "female woman", "hair", "person"} {
		if strings.Contains(prompt, fragment) {
			t.Errorf("empty appearance produced descriptor %q in %q", fragment, prompt)
		}
	}
	if !strings.Contains(prompt, basePrompt) {
		t.Errorf("prompt missing base fragment: %q", prompt)
	}
	if !strings.HasSuffix(prompt, promptSuffix) {
		t.Errorf("prompt missing quality suffix: %q", prompt)
	}
}

func TestBuildPromptAgeBuckets(t *testing.T) {
	buckets := []string{"young person", "adult person", "middle-aged person", "elderly person"}

	tests := []struct {
		age  string
		want string
	}{
		{"15", "young person"},
		{"19세", "young person"},
		{"20", "adult person"},
		{"25세", "adult person"},
		{"39", "adult person"},
		{"40", "middle-aged person"},
		{"59세", "middle-aged person"},
		{"60", "elderly person"},
		{"82세", "elderly person"},
	}
	for _, tt := range tests {
		prompt := BuildPrompt(request(schema.Appearance{Age: tt.age}))
		if !strings.Contains(prompt, tt.want) {
			t.Errorf("age %q: expected %q in %q", tt.age, tt.want, prompt)
		}
		for _, bucket := range buckets {
			if bucket == tt.want {
				continue
			}
			if strings.Contains(prompt, bucket) {
				t.Errorf("age %q: unexpected %q in %q", tt.age, bucket, prompt)
			}
		}
	}
}

func TestBuildPromptUnparseableAge(t *testing.T) {
	for _, age := range []string{"", "스물다섯", "about thirty", "알 수 없음"} {
		prompt := BuildPrompt(request(schema.Appearance{Age: age}))
		if strings.Contains(prompt, "person") {
			t.Errorf("age %q: unexpected age bucket in %q", age, prompt)
		}
	}
}

func TestBuildPromptGenderAndHair(t *testing.T) {
	prompt := BuildPrompt(request(schema.Appearance{Gender: "male", HairColor: "금발"}))

	if !strings.HasPrefix(prompt, "handsome male man") {
		t.Errorf("male descriptor should lead the prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "golden blonde hair") {
		t.Errorf("expected golden blonde hair in %q", prompt)
	}
}

func TestBuildPromptFemaleBeatsMaleSubstring(t *testing.T) {
	for _, gender := range []string{"female", "여성"} {
		prompt := BuildPrompt(request(schema.Appearance{Gender: gender}))
		if !strings.Contains(prompt, "beautiful female woman") {
			t.Errorf("gender %q: expected female descriptor in %q", gender, prompt)
		}
		if strings.Contains(prompt, "handsome male man") {
			t.Errorf("gender %q: male descriptor leaked into %q", gender, prompt)
		}
	}
}

func TestBuildPromptSkipsUnknownMarkers(t *testing.T) {
	prompt := BuildPrompt(request(schema.Appearance{
		HairColor: "알 수 없음",
		HairStyle: "unknown",
		SkinTone:  "알 수 없음",
	}))
	if strings.Contains(prompt, "hair") || strings.Contains(prompt, "skin") {
		t.Errorf("unknown markers should contribute nothing: %q", prompt)
	}
}

func TestBuildPromptSkinDetailsStack(t *testing.T) {
	prompt := BuildPrompt(request(schema.Appearance{SkinDetails: "여드름과 주름"}))
	if !strings.Contains(prompt, "skin with acne") {
		t.Errorf("expected acne fragment in %q", prompt)
	}
	if !strings.Contains(prompt, "wrinkled skin") {
		t.Errorf("expected wrinkle fragment in %q", prompt)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := request(schema.Appearance{
		Gender: "여성", Age: "34세", HairColor: "갈색", HairStyle: "긴 생머리", SkinTone: "밝은 편",
	})
	first := BuildPrompt(req)
	for range 10 {
		if got := BuildPrompt(req); got != first {
			t.Fatalf("prompt not deterministic: %q vs %q", first, got)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"25세", 25, true},
		{" 40", 40, true},
		{"7", 7, true},
		{"세25", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("leadingInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
