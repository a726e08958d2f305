package providers

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PackagePrefix is the npm scope used for providers missing from the table.
const PackagePrefix = "@ai-sdk"

// FallbackModel is the default model for providers missing from the table.
const FallbackModel = "gpt-4o-mini"

// Descriptor describes one provider.
type Descriptor struct {
	ID           string // lowercased identifier, e.g. "openai"
	DisplayName  string // e.g. "OpenAI"
	Package      string // e.g. "@ai-sdk/openai"
	EnvVar       string // e.g. "OPENAI_API_KEY"
	DefaultModel string // e.g. "gpt-4o-mini"
}

var registry = map[string]Descriptor{
	"openai":     {"openai", "OpenAI", "@ai-sdk/openai", "OPENAI_API_KEY", "gpt-4o-mini"},
	"anthropic":  {"anthropic", "Anthropic", "@ai-sdk/anthropic", "ANTHROPIC_API_KEY", "claude-3-5-sonnet-latest"},
	"google":     {"google", "Google Gemini", "@ai-sdk/google", "GOOGLE_GENERATIVE_AI_API_KEY", "gemini-1.5-flash"},
	"groq":       {"groq", "Groq", "@ai-sdk/groq", "GROQ_API_KEY", "llama-3.3-70b-versatile"},
	"mistral":    {"mistral", "Mistral", "@ai-sdk/mistral", "MISTRAL_API_KEY", "mistral-large-latest"},
	"cohere":     {"cohere", "Cohere", "@ai-sdk/cohere", "COHERE_API_KEY", "command-r-plus"},
	"xai":        {"xai", "xAI", "@ai-sdk/xai", "XAI_API_KEY", "grok-2-latest"},
	"deepseek":   {"deepseek", "DeepSeek", "@ai-sdk/deepseek", "DEEPSEEK_API_KEY", "deepseek-chat"},
	"perplexity": {"perplexity", "Perplexity", "@ai-sdk/perplexity", "PERPLEXITY_API_KEY", "sonar"},
	"togetherai": {"togetherai", "Together AI", "@ai-sdk/togetherai", "TOGETHER_AI_API_KEY", "meta-llama/Llama-3.3-70B-Instruct-Turbo"},
	"fireworks":  {"fireworks", "Fireworks", "@ai-sdk/fireworks", "FIREWORKS_API_KEY", "accounts/fireworks/models/llama-v3p3-70b-instruct"},
	"cerebras":   {"cerebras", "Cerebras", "@ai-sdk/cerebras", "CEREBRAS_API_KEY", "llama3.1-8b"},
	"deepinfra":  {"deepinfra", "DeepInfra", "@ai-sdk/deepinfra", "DEEPINFRA_API_KEY", "meta-llama/Meta-Llama-3.1-70B-Instruct"},
	"azure":      {"azure", "Azure OpenAI", "@ai-sdk/azure", "AZURE_API_KEY", "gpt-4o"},
	"bedrock":    {"bedrock", "Amazon Bedrock", "@ai-sdk/amazon-bedrock", "AWS_ACCESS_KEY_ID", "anthropic.claude-3-5-sonnet-20240620-v1:0"},
	"openrouter": {"openrouter", "OpenRouter", "@openrouter/ai-sdk-provider", "OPENROUTER_API_KEY", "openai/gpt-4o-mini"},
	"ollama":     {"ollama", "Ollama", "ollama-ai-provider", "OLLAMA_BASE_URL", "llama3.2"},
}

// Normalize lowercases a provider identifier. Callers reading identifiers
// from user input trim them first.
func Normalize(id string) string {
	return strings.ToLower(id)
}

// Lookup returns the descriptor for id. Unknown identifiers get a synthesized
// descriptor: package "@ai-sdk/<id>", env var "<ID>_API_KEY", FallbackModel.
func Lookup(id string) Descriptor {
	key := Normalize(id)
	if d, ok := registry[key]; ok {
		return d
	}
	return Descriptor{
		ID:           key,
		DisplayName:  cases.Title(language.English).String(key),
		Package:      PackagePrefix + "/" + key,
		EnvVar:       strings.ToUpper(id) + "_API_KEY",
		DefaultModel: FallbackModel,
	}
}

// IsKnown reports whether id is in the provider table.
func IsKnown(id string) bool {
	_, ok := registry[Normalize(id)]
	return ok
}

// PackageName returns the npm package implementing the provider.
func PackageName(id string) string { return Lookup(id).Package }

// EnvVarName returns the environment variable holding the provider credential.
func EnvVarName(id string) string { return Lookup(id).EnvVar }

// DefaultModel returns the model used when none is chosen.
func DefaultModel(id string) string { return Lookup(id).DefaultModel }

// Supported returns the known provider identifiers in sorted order.
func Supported() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
