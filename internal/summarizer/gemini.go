package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// Summarize sends the segment to Gemini. API failures are folded into the
// sentinel so a flaky backend degrades a unit, never the whole run.
func (s *implGemini) Summarize(ctx context.Context, text string) (string, error) {
	summary, err := s.callGemini(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Error(ctx, "Gemini summarization failed: %v", err)
		return SentinelGeminiUnavailable, nil
	}
	return strings.TrimSpace(summary), nil
}

// callGemini tries each configured API key at most once, rotating away from
// a key that cannot serve the call. A hard API error fails immediately.
func (s *implGemini) callGemini(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, text)

	var lastErr error
	for range s.apiKeys {
		summary, retry, err := s.generate(ctx, s.apiKeys[s.currentKey], prompt)
		if err == nil {
			return summary, nil
		}
		if !retry {
			return "", err
		}
		lastErr = err
		s.rotateKey()
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// generate performs one GenerateContent call with the given key. retry
// reports whether the next key is worth trying: client setup failures and
// exhausted quotas are, malformed responses and other API errors are not.
func (s *implGemini) generate(ctx context.Context, key, prompt string) (string, bool, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", true, fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		if isQuotaError(err) {
			s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
			return "", true, err
		}
		return "", false, fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", false, fmt.Errorf("empty response from Gemini")
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), false, nil
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (s *implGemini) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
