package models

import "strings"

// containsAny reports whether id contains any of the fragments, ignoring case.
func containsAny(id string, fragments ...string) bool {
	lower := strings.ToLower(id)
	for _, frag := range fragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// hasAnyPrefix reports whether id starts with any of the prefixes.
func hasAnyPrefix(id string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// openAIChatModel keeps the chat and reasoning families of the OpenAI catalog,
// which also lists embedding, speech, image and moderation models.
func openAIChatModel(id string) bool {
	if !hasAnyPrefix(id, "gpt-", "chatgpt-", "o1", "o3", "o4") {
		return false
	}
	return !containsAny(id, "embedding", "whisper", "tts", "dall-e", "audio",
		"realtime", "transcribe", "search", "moderation", "image")
}

// googleChatModel drops embedding, attributed-QA, vision-only and image models.
func googleChatModel(id string) bool {
	return !containsAny(id, "embedding", "aqa", "vision", "imagen")
}
