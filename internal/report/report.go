package report

import (
	"context"
	"strings"
	"time"

	"github.com/verte-zerg/streamsync/internal/model"
)

// Fixed user-facing fallback strings. Generate never surfaces a raw error.
const (
	FallbackUnavailable = "The analysis service is temporarily unavailable. Check the API key or network connection."
	FallbackEmpty       = "Unable to generate an analysis report. Please try again later."
)

// Generate builds the prompt from the full record set, delegates to the
// summarizer, and returns its text verbatim. On any failure it returns a
// fixed fallback string instead of an error, and there is no retry.
func Generate(ctx context.Context, s Summarizer, sessions []model.Session, hosts []model.Host) string {
	prompt, err := BuildPrompt(sessions, hosts, time.Now().Format("2006-01-02"))
	if err != nil {
		return FallbackUnavailable
	}
	text, err := s.Summarize(ctx, prompt)
	if err != nil {
		return FallbackUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return FallbackEmpty
	}
	return text
}
