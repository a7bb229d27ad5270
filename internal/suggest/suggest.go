// Package suggest wraps the generative-AI collaborator that proposes
// print jobs (description, specs, rate) from a free-text prompt. The
// collaborator is strictly best-effort: every failure path degrades to
// an empty suggestion list, surfaced to the user only as the absence of
// a pre-filled line item.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/zeshan/pressbook/internal/domain"
)

// Service proposes print jobs from a free-text job description
type Service interface {
	// JobSuggestions returns zero or more suggestions for the prompt.
	// Failures are logged and reported as an empty slice, never an error.
	JobSuggestions(ctx context.Context, prompt string) []domain.JobSuggestion

	// Enabled reports whether the collaborator is usable (client built,
	// API key present)
	Enabled() bool
}

type service struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New creates the suggestion service. When no API key is configured the
// returned service is disabled and always yields empty results.
func New(ctx context.Context, model string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}

	// The client reads GEMINI_API_KEY from the environment
	client, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		logger.Warn("job suggestions disabled", "err", err)
		return &service{model: model, logger: logger}
	}

	return &service{client: client, model: model, logger: logger}
}

// responseSchema constrains the model to the suggestion JSON shape
var responseSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description":    {Type: genai.TypeString},
			"suggestedSpecs": {Type: genai.TypeString},
			"suggestedRate":  {Type: genai.TypeNumber},
		},
		Required: []string{"description", "suggestedSpecs", "suggestedRate"},
	},
}

func (s *service) Enabled() bool {
	return s.client != nil
}

func (s *service) JobSuggestions(ctx context.Context, prompt string) []domain.JobSuggestion {
	if s.client == nil || prompt == "" {
		return nil
	}

	contents := genai.Text(fmt.Sprintf(
		`آپ پرنٹنگ پریس کے ماہر ہیں۔
دی گئی تفصیل کی بنیاد پر، پرنٹنگ کے کام (مثلاً کارڈز، بینرز) کی اردو میں تجویز دیں، بشمول تکنیکی تفصیلات (پیپر سائز، کوالٹی) اور ریٹ۔
Input: %q`, prompt))

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		s.logger.Warn("job suggestion request failed", "err", err)
		return nil
	}

	suggestions, err := ParseSuggestions([]byte(resp.Text()))
	if err != nil {
		s.logger.Warn("job suggestion response malformed", "err", err)
		return nil
	}

	return suggestions
}

// ParseSuggestions decodes the collaborator's JSON payload. Malformed
// data is an error for the caller to swallow, not a crash.
func ParseSuggestions(data []byte) ([]domain.JobSuggestion, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var suggestions []domain.JobSuggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	return suggestions, nil
}
