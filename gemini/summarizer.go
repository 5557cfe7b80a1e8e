// Package gemini provides an article summarizer backed by Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/scinews"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements scinews.Summarizer at compile time.
var _ scinews.Summarizer = (*Summarizer)(nil)

// Summarizer implements scinews.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a short summary of a rendered article.
func (s *Summarizer) Summarize(ctx context.Context, markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", scinews.Errorf(scinews.EINVALID, "article markdown required")
	}

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(markdown)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", scinews.Errorf(scinews.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a science news editor. Summarize the article in three to five sentences for a general audience. Use only information from the article.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt wraps the article for the model.
func BuildUserPrompt(markdown string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	sb.WriteString(markdown)
	sb.WriteString("\n</article>\n\nSummarize the article above.")
	return sb.String()
}
