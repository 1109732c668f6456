package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/domain/repository"
)

var errBlocked = errors.New("response blocked by safety filter")

// generator *genai.GenerativeModel subset; tests swap it out
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiClient struct {
	client     *genai.Client
	model      generator
	log        zerolog.Logger
	retryDelay time.Duration
}

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(ctx context.Context, apiKey string, log zerolog.Logger) (repository.AIRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)
	model.SetTemperature(constants.AITemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(CommentaryInstruction)},
	}

	return &geminiClient{
		client:     client,
		model:      model,
		log:        log.With().Str("component", "gemini").Logger(),
		retryDelay: constants.AIRetryDelay,
	}, nil
}

// CommentOnBuild konfiguratsiya haqida qisqa izoh (retry bilan)
func (g *geminiClient) CommentOnBuild(ctx context.Context, req entity.Requirements, result *entity.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("nil result")
	}
	ctx, cancel := context.WithTimeout(ctx, constants.AIRequestTimeout)
	defer cancel()

	prompt := buildCommentPrompt(req, result)
	var lastErr error
	for attempt := 1; attempt <= constants.AIMaxRetries; attempt++ {
		text, err := g.generateOnce(ctx, prompt)
		if err == nil {
			g.log.Debug().Int("attempt", attempt).Msg("commentary received")
			return text, nil
		}
		if errors.Is(err, errBlocked) {
			return "", err
		}
		lastErr = err
		g.log.Warn().Err(err).Int("attempt", attempt).Msg("gemini request failed")

		if attempt < constants.AIMaxRetries {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(g.retryDelay):
			}
		}
	}
	return "", fmt.Errorf("no commentary after %d attempts: %w", constants.AIMaxRetries, lastErr)
}

func (g *geminiClient) generateOnce(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", errBlocked
	}
	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					result.WriteString(string(t))
				}
			}
		}
	}
	return result.String()
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
