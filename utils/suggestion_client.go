package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	MissingKeyDescription = "Delicious and freshly prepared."
	FailedDescription     = "Freshly made with quality ingredients."
	DefaultCategory       = "General"
)

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenAIGenerator generates text with the Gemini API.
type GenAIGenerator struct {
	client *genai.Client
	model  string
}

func NewGenAIGenerator(ctx context.Context, apiKey, model string) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAIGenerator{client: client, model: model}, nil
}

func (g *GenAIGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}
	return resp.Text(), nil
}

// Suggester writes menu descriptions and price suggestions. It never fails:
// a missing generator or an API error yields a fixed fallback.
type Suggester struct {
	generator TextGenerator
	timeout   time.Duration
	log       *zap.Logger
}

// NewSuggester accepts a nil generator, which means no API key is configured.
func NewSuggester(generator TextGenerator, timeout time.Duration, log *zap.Logger) *Suggester {
	if log == nil {
		log = zap.NewNop()
	}
	return &Suggester{generator: generator, timeout: timeout, log: log}
}

func (s *Suggester) Enabled() bool {
	return s != nil && s.generator != nil
}

func (s *Suggester) generate(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GenerateMenuDescription returns a short appetizing description for an item.
func (s *Suggester) GenerateMenuDescription(ctx context.Context, itemName, category string) string {
	if !s.Enabled() {
		s.log.Warn("gemini api key is missing, returning placeholder description")
		return MissingKeyDescription
	}
	if category == "" {
		category = DefaultCategory
	}

	prompt := fmt.Sprintf("Write a short, appetizing description (max 20 words) for a menu item named %q in the category %q. Make it sound premium.", itemName, category)
	text, err := s.generate(ctx, prompt)
	if err != nil || text == "" {
		s.log.Error("menu description generation failed", zap.String("item", itemName), zap.Error(err))
		return FailedDescription
	}
	return text
}

// SuggestPrice returns a price in USD as a numeric string, or "" when no
// suggestion is available.
func (s *Suggester) SuggestPrice(ctx context.Context, itemName string) string {
	if !s.Enabled() {
		return ""
	}

	prompt := fmt.Sprintf("Suggest a realistic price in USD for a restaurant menu item: %q. Return only the number, e.g., 12.50.", itemName)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.log.Error("price suggestion failed", zap.String("item", itemName), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(strings.Replace(text, "$", "", 1))
}
