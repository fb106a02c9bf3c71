package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var ProfileSchema = generateSchema[ExtractedProfile]()

// ProfileResponseFormat asks providers that support structured outputs for a
// strict ExtractedProfile object. Providers without structured-output support
// ignore it; the brace-scan parse handles their free-form replies.
func ProfileResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "character_profile",
		Description: openai.String("Name, appearance, personality and background extracted from a document"),
		Schema:      ProfileSchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}
