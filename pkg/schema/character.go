package schema

import "time"

// CharacterProfile is the structured record extracted from an uploaded document.
// ID and Name are always present; every other field may be absent and an empty
// string uniformly means "unknown".
type CharacterProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl,omitempty"`

	Appearance  Appearance  `json:"appearance"`
	Personality Personality `json:"personality"`
	Background  Background  `json:"background"`

	Relationships *Relationships `json:"relationships,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Appearance struct {
	Age            string `json:"age,omitempty" jsonschema_description:"Age as stated in the text (e.g. '25세')"`
	Gender         string `json:"gender,omitempty" jsonschema_description:"Gender as stated"`
	Height         string `json:"height,omitempty" jsonschema_description:"Height if mentioned"`
	Build          string `json:"build,omitempty" jsonschema_description:"Body build or physique"`
	HairColor      string `json:"hairColor,omitempty" jsonschema_description:"Hair color"`
	HairStyle      string `json:"hairStyle,omitempty" jsonschema_description:"Hair style"`
	EyeColor       string `json:"eyeColor,omitempty" jsonschema_description:"Eye color"`
	SkinTone       string `json:"skinTone,omitempty" jsonschema_description:"Skin tone"`
	SkinDetails    string `json:"skinDetails,omitempty" jsonschema_description:"Skin texture details (acne, wrinkles, scars...)"`
	FacialFeatures string `json:"facialFeatures,omitempty" jsonschema_description:"Notable facial features"`
	Clothing       string `json:"clothing,omitempty" jsonschema_description:"Typical clothing"`
	Accessories    string `json:"accessories,omitempty" jsonschema_description:"Accessories worn"`
}

type Personality struct {
	Traits        []string `json:"traits" jsonschema_description:"Key personality traits"`
	Temperament   string   `json:"temperament,omitempty" jsonschema_description:"Overall temperament"`
	Habits        []string `json:"habits,omitempty" jsonschema_description:"Habits mentioned in the text"`
	SpeechPattern string   `json:"speechPattern,omitempty" jsonschema_description:"Manner of speaking"`
}

type Background struct {
	Occupation string   `json:"occupation,omitempty" jsonschema_description:"Occupation"`
	Education  string   `json:"education,omitempty" jsonschema_description:"Education"`
	Family     string   `json:"family,omitempty" jsonschema_description:"Family situation"`
	Hometown   string   `json:"hometown,omitempty" jsonschema_description:"Hometown"`
	Interests  []string `json:"interests,omitempty" jsonschema_description:"Interests and hobbies"`
}

type Relationships struct {
	Family     []string `json:"family,omitempty"`
	Friends    []string `json:"friends,omitempty"`
	Colleagues []string `json:"colleagues,omitempty"`
}

// ExtractedProfile is the payload shape the extraction prompt asks the model
// for: the four top-level keys, nothing else. The service merges it with a
// fresh ID and timestamps.
type ExtractedProfile struct {
	Name        string      `json:"name" jsonschema_description:"Canonical name of the person"`
	Appearance  Appearance  `json:"appearance" jsonschema_description:"Physical appearance details"`
	Personality Personality `json:"personality" jsonschema_description:"Personality traits and manner"`
	Background  Background  `json:"background" jsonschema_description:"Occupation, education, family, hometown, interests"`
}

// ChatMessage is a single conversation turn. Ordering is caller-supplied;
// nothing is stored server-side.
type ChatMessage struct {
	ID          string    `json:"id"`
	Role        string    `json:"role"` // user, assistant or system
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	CharacterID string    `json:"characterId,omitempty"`
}

// PDFAnalysisResult is the upload endpoint's response. RawText carries only
// the first 1000 characters of the extracted text.
type PDFAnalysisResult struct {
	Success       bool              `json:"success"`
	CharacterInfo *CharacterProfile `json:"characterInfo,omitempty"`
	Error         string            `json:"error,omitempty"`
	RawText       string            `json:"rawText,omitempty"`
}

// ImageGenerationRequest carries the profile plus rendering knobs.
type ImageGenerationRequest struct {
	CharacterInfo *CharacterProfile `json:"characterInfo"`
	Style         string            `json:"style,omitempty"` // caricature, cartoon or realistic
	Mood          string            `json:"mood,omitempty"`  // happy, serious, friendly or professional
}

// ImageGenerationResult is the outcome of one generation attempt, or of the
// whole fallback chain.
type ImageGenerationResult struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Error    string `json:"error,omitempty"`
}
