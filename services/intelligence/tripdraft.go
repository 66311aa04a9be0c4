package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"alpsconnect/models"
	"alpsconnect/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// TripDraft is a model-generated starting point for a trip listing.
type TripDraft struct {
	Description string   `json:"description"`
	Equipment   []string `json:"equipment"`
}

// DraftService produces trip listing drafts.
type DraftService interface {
	GenerateTripDraft(ctx context.Context, location string, activity models.ActivityType, difficulty models.Difficulty) (TripDraft, error)
}

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-2.0-flash")
	model.ResponseMIMEType = "application/json"
	return &GeminiClient{model: model}
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// contentGenerator is the slice of the model client the draft service needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultDraftService generates drafts via Gemini and degrades to a static
// draft when no API key is configured or the model call fails: draft
// generation never blocks publishing a trip.
type DefaultDraftService struct {
	client contentGenerator
}

func NewDefaultDraftService(apiKey string) *DefaultDraftService {
	svc := &DefaultDraftService{}
	if apiKey != "" {
		svc.client = NewGeminiClient(apiKey)
	}
	return svc
}

func (s *DefaultDraftService) GenerateTripDraft(ctx context.Context, location string, activity models.ActivityType, difficulty models.Difficulty) (TripDraft, error) {
	logger := utils.GetLogger()

	if s.client == nil {
		logger.Warn("Gemini API key is missing, returning fallback trip draft")
		return fallbackDraft(), nil
	}

	prompt := fmt.Sprintf(`
Create a detailed description and equipment list for a mountain guide leading a trip.
Location: %s
Activity: %s
Difficulty: %s

Return the response in JSON format with the shape {"description": string, "equipment": [string]}.
The description should be exciting and professional (in Italian).
The equipment list should be a simple array of strings (in Italian).
`, location, activity, difficulty)

	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Warn("trip draft generation failed", zap.Error(err))
		return fallbackDraft(), nil
	}

	var draft TripDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		logger.Warn("trip draft response was not valid JSON", zap.Error(err))
		return fallbackDraft(), nil
	}
	if draft.Description == "" {
		return fallbackDraft(), nil
	}
	return draft, nil
}

func fallbackDraft() TripDraft {
	return TripDraft{
		Description: "Descrizione non disponibile. Completa manualmente i dettagli della gita.",
		Equipment:   []string{"Attrezzatura standard"},
	}
}
