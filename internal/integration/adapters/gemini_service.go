// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GeminiService implements the CategorySuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest proposes a category for the given expense title, preferring the
// user's existing categories over inventing new ones.
func (s *GeminiService) Suggest(ctx context.Context, title string, existing []*entity.Category) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(title, existing)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseResponse(resp)
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(title string, existing []*entity.Category) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal expenses. Given an expense title, suggest the single best category.

RULES:
- Prefer an existing category when one fits well
- Only propose a new category when no existing one is a reasonable match
- New category titles must be short (one or two words)

EXISTING CATEGORIES:
`)

	if len(existing) > 0 {
		for _, cat := range existing {
			sb.WriteString(fmt.Sprintf("- ID: %s, Title: %s\n", cat.ID, cat.Title))
		}
	} else {
		sb.WriteString("(none)\n")
	}

	sb.WriteString(fmt.Sprintf(`
EXPENSE TITLE: %q

Respond with a single JSON object:
{
  "existing_category_id": "uuid of the matching existing category or null",
  "new_title": "proposed new category title or empty string",
  "confidence": 0.0-1.0
}

Exactly one of existing_category_id and new_title must be set.

RESPONSE FORMAT: Return only the JSON object, no additional text.
`, title))

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	ExistingCategoryID *string `json:"existing_category_id"`
	NewTitle           string  `json:"new_title"`
	Confidence         float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into a CategorySuggestion.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	suggestion := &adapter.CategorySuggestion{
		Confidence: raw.Confidence,
	}

	if raw.ExistingCategoryID != nil && *raw.ExistingCategoryID != "" {
		catID, err := uuid.Parse(*raw.ExistingCategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID in response: %w", err)
		}
		suggestion.ExistingCategoryID = &catID
	} else if raw.NewTitle != "" {
		suggestion.NewTitle = raw.NewTitle
	} else {
		return nil, fmt.Errorf("suggestion has neither existing category nor new title")
	}

	return suggestion, nil
}
