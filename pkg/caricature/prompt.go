package caricature

import (
	"strconv"
	"strings"

	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// Fixed prompt fragments. The builder is pure string assembly and must stay
// deterministic: its output is part of the generation request and any
// randomness here would make identical profiles render differently.
const (
	basePrompt   = "high quality cartoon character portrait, professional digital art, clean vector style, detailed illustration"
	promptSuffix = ", expressive eyes, friendly smile, masterpiece, best quality, sharp focus, vibrant colors, clean white background"

	negativePrompt = "nsfw, inappropriate, adult, sexual, nude, realistic, ugly, deformed, low quality, blurry, bad anatomy, worst quality, jpeg artifacts"

	// safePrompt is the generic prompt used for the content-policy retry. It
	// deliberately carries no profile-derived detail.
	safePrompt = "high quality cartoon character, professional digital art, clean style, friendly face, masterpiece"

	localNegativePrompt = "ugly, deformed, nsfw, low quality, blurry, distorted"
)

// known marks a field as carrying real information: non-empty and not the
// literal unknown placeholder the extraction model emits.
func known(value string) bool {
	if value == "" || value == "알 수 없음" {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(value), "unknown")
}

// leadingInt parses the integer prefix of an age string like "25세" or "34".
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// BuildPrompt maps appearance fields onto English descriptor fragments via
// fixed Korean/English keyword matching. The gender descriptor leads the
// prompt, the quality suffix always closes it.
func BuildPrompt(req *schema.ImageGenerationRequest) string {
	a := req.CharacterInfo.Appearance

	var gender string
	if known(a.Gender) {
		// Check female first: "female" contains "male" as a substring.
		switch {
		case utils.StringContains(a.Gender, false, "여", "female"):
			gender = "beautiful female woman, feminine features, "
		case utils.StringContains(a.Gender, false, "남", "male"):
			gender = "handsome male man, masculine features, "
		}
	}

	var b strings.Builder
	b.WriteString(gender)
	b.WriteString(basePrompt)

	if known(a.Age) {
		if n, ok := leadingInt(a.Age); ok {
			switch {
			case n < 20:
				b.WriteString(", young person")
			case n < 40:
				b.WriteString(", adult person")
			case n < 60:
				b.WriteString(", middle-aged person")
			default:
				b.WriteString(", elderly person")
			}
		}
	}

	if known(a.HairColor) {
		switch {
		case utils.StringContains(a.HairColor, false, "금", "blonde", "golden"):
			b.WriteString(", golden blonde hair")
		case utils.StringContains(a.HairColor, false, "갈", "brown"):
			b.WriteString(", warm brown hair")
		case utils.StringContains(a.HairColor, false, "검", "black"):
			b.WriteString(", sleek black hair")
		case utils.StringContains(a.HairColor, false, "흰", "백", "white", "silver"):
			b.WriteString(", silver white hair")
		}
	}

	if known(a.HairStyle) {
		switch {
		case utils.StringContains(a.HairStyle, false, "짧", "short"):
			b.WriteString(", short hair")
		case utils.StringContains(a.HairStyle, false, "긴", "long"):
			b.WriteString(", long hair")
		case utils.StringContains(a.HairStyle, false, "곱슬", "curly"):
			b.WriteString(", curly hair")
		}
	}

	if known(a.SkinTone) {
		switch {
		case utils.StringContains(a.SkinTone, false, "밝은", "하얀", "fair", "pale"):
			b.WriteString(", fair skin tone, light complexion")
		case utils.StringContains(a.SkinTone, false, "어두운", "검은", "dark"):
			b.WriteString(", dark skin tone, rich complexion")
		case utils.StringContains(a.SkinTone, false, "태닝", "그을린", "tan"):
			b.WriteString(", tanned skin, sun-kissed complexion")
		case utils.StringContains(a.SkinTone, false, "중간", "보통", "medium"):
			b.WriteString(", medium skin tone, natural complexion")
		case utils.StringContains(a.SkinTone, false, "황", "olive"):
			b.WriteString(", olive skin tone, warm complexion")
		}
	}

	if known(a.SkinDetails) {
		if utils.StringContains(a.SkinDetails, false, "여드름", "acne", "pimple") {
			b.WriteString(", skin with acne, blemished skin")
		}
		if utils.StringContains(a.SkinDetails, false, "주름", "wrinkle", "aged") {
			b.WriteString(", wrinkled skin, aged skin texture")
		}
		if utils.StringContains(a.SkinDetails, false, "잡티", "흉터", "scar", "spot") {
			b.WriteString(", skin with spots, visible skin marks")
		}
		if utils.StringContains(a.SkinDetails, false, "매끄", "깨끗", "smooth", "clear") {
			b.WriteString(", smooth clear skin, flawless complexion")
		}
		if utils.StringContains(a.SkinDetails, false, "거친", "건조", "rough", "dry") {
			b.WriteString(", rough skin texture, dry skin")
		}
	}

	b.WriteString(promptSuffix)
	return b.String()
}
