package character

import (
	"strings"

	"carichat/pkg/schema"
)

// The formatters below flatten profile sections into the "label: value" strings
// that get interpolated verbatim into prompts. Field order is fixed so the same
// profile always yields the same prompt.

// FormatAppearance joins every present appearance field.
func FormatAppearance(a schema.Appearance) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("나이", a.Age)
	add("성별", a.Gender)
	add("키", a.Height)
	add("체형", a.Build)
	add("머리색", a.HairColor)
	add("머리스타일", a.HairStyle)
	add("눈색", a.EyeColor)
	add("피부톤", a.SkinTone)
	add("피부 세부사항", a.SkinDetails)
	add("얼굴 특징", a.FacialFeatures)
	add("옷차림", a.Clothing)
	add("액세서리", a.Accessories)
	if len(parts) == 0 {
		return "외모 정보 없음"
	}
	return strings.Join(parts, ", ")
}

// FormatPersonality joins traits, temperament, habits and speech pattern.
func FormatPersonality(p schema.Personality) string {
	var parts []string
	if len(p.Traits) > 0 {
		parts = append(parts, "성격: "+strings.Join(p.Traits, ", "))
	}
	if p.Temperament != "" {
		parts = append(parts, "기질: "+p.Temperament)
	}
	if len(p.Habits) > 0 {
		parts = append(parts, "습관: "+strings.Join(p.Habits, ", "))
	}
	if p.SpeechPattern != "" {
		parts = append(parts, "말투: "+p.SpeechPattern)
	}
	if len(parts) == 0 {
		return "성격 정보 없음"
	}
	return strings.Join(parts, ", ")
}

// FormatBackground joins occupation, education, family, hometown and interests.
func FormatBackground(b schema.Background) string {
	var parts []string
	if b.Occupation != "" {
		parts = append(parts, "직업: "+b.Occupation)
	}
	if b.Education != "" {
		parts = append(parts, "학력: "+b.Education)
	}
	if b.Family != "" {
		parts = append(parts, "가족: "+b.Family)
	}
	if b.Hometown != "" {
		parts = append(parts, "고향: "+b.Hometown)
	}
	if len(b.Interests) > 0 {
		parts = append(parts, "관심사: "+strings.Join(b.Interests, ", "))
	}
	if len(parts) == 0 {
		return "배경 정보 없음"
	}
	return strings.Join(parts, ", ")
}
