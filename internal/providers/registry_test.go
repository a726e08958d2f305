package providers

import (
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestLookupKnown(t *testing.T) {
	tests := []struct {
		id      string
		pkg     string
		envVar  string
		model   string
		display string
	}{
		{"openai", "@ai-sdk/openai", "OPENAI_API_KEY", "gpt-4o-mini", "OpenAI"},
		{"groq", "@ai-sdk/groq", "GROQ_API_KEY", "llama-3.3-70b-versatile", "Groq"},
		{"google", "@ai-sdk/google", "GOOGLE_GENERATIVE_AI_API_KEY", "gemini-1.5-flash", "Google Gemini"},
		{"openrouter", "@openrouter/ai-sdk-provider", "OPENROUTER_API_KEY", "openai/gpt-4o-mini", "OpenRouter"},
		{"bedrock", "@ai-sdk/amazon-bedrock", "AWS_ACCESS_KEY_ID", "anthropic.claude-3-5-sonnet-20240620-v1:0", "Amazon Bedrock"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d := Lookup(tt.id)
			assert.Equal(t, tt.id, d.ID)
			assert.Equal(t, tt.pkg, PackageName(tt.id))
			assert.Equal(t, tt.envVar, EnvVarName(tt.id))
			assert.Equal(t, tt.model, DefaultModel(tt.id))
			assert.Equal(t, tt.display, d.DisplayName)
			assert.True(t, IsKnown(tt.id))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	d := Lookup("Acme")
	assert.Equal(t, "acme", d.ID)
	assert.Equal(t, "Acme", d.DisplayName)
	assert.Equal(t, "@ai-sdk/acme", d.Package)
	assert.Equal(t, "ACME_API_KEY", d.EnvVar)
	assert.Equal(t, FallbackModel, d.DefaultModel)
	assert.False(t, IsKnown("acme"))
}

func TestSupportedIsSortedAndComplete(t *testing.T) {
	ids := Supported()
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids, len(registry))
	assert.Contains(t, ids, "ollama")
	assert.Contains(t, ids, "perplexity")
}

func TestKnownProvidersAreCaseInsensitive(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	mixCase := func(id string, mask uint64) string {
		var b strings.Builder
		for i, r := range id {
			if mask&(1<<(uint(i)%64)) != 0 {
				b.WriteString(strings.ToUpper(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	}

	properties.Property("lookups ignore case for every known provider", prop.ForAll(
		func(id string, mask uint64) bool {
			variant := mixCase(id, mask)
			upper, lower := strings.ToUpper(id), strings.ToLower(id)
			return PackageName(variant) == PackageName(upper) && PackageName(upper) == PackageName(lower) &&
				EnvVarName(variant) == EnvVarName(upper) && EnvVarName(upper) == EnvVarName(lower) &&
				DefaultModel(variant) == DefaultModel(upper) && DefaultModel(upper) == DefaultModel(lower)
		},
		gen.OneConstOf(toInterfaces(Supported())...),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestUnknownProvidersAreSynthesized(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	unknownID := gen.Identifier().SuchThat(func(s string) bool { return !IsKnown(s) })

	properties.Property("package name is prefix plus lowercased id", prop.ForAll(
		func(id string) bool {
			return PackageName(id) == PackagePrefix+"/"+strings.ToLower(id)
		},
		unknownID,
	))

	properties.Property("env var is uppercased id plus _API_KEY", prop.ForAll(
		func(id string) bool {
			return EnvVarName(id) == strings.ToUpper(id)+"_API_KEY"
		},
		unknownID,
	))

	properties.Property("default model is the global fallback", prop.ForAll(
		func(id string) bool {
			return DefaultModel(id) == FallbackModel
		},
		unknownID,
	))

	properties.TestingRun(t)
}

func toInterfaces(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
