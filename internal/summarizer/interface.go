package summarizer

import "context"

// Summarizer condenses one text segment into bullet-point notes.
// Backend unavailability is reported through the returned text as a fixed
// sentinel string, not as an error: the pipeline stores whatever comes back
// as that unit's content. Errors are reserved for hard failures such as
// context cancellation.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Sentinel strings written as unit content when a backend is unavailable.
const (
	SentinelOllamaNotFound    = "[Error: Ollama not found]"
	SentinelGeminiUnavailable = "[Error: Gemini unavailable]"
)

const summaryPrompt = "Summarize the following text into concise bullet points:\n\n%s"
