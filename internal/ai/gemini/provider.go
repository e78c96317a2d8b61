package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/zenithwellness/zenith/internal/ai"
	"github.com/zenithwellness/zenith/internal/config"
)

type Provider struct {
	apiKey      string
	model       string
	customModel string
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		customModel: cfg.CustomModelID,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) AvailableModels() []string {
	models := []string{
		"gemini-2.5-flash",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	}
	if p.customModel != "" {
		models = append(models, p.customModel)
	}
	return models
}

func (p *Provider) DefaultModel() string {
	// A fine-tuned persona model takes precedence when one is deployed.
	if p.customModel != "" {
		return p.customModel
	}
	if p.model != "" {
		return p.model
	}
	return "gemini-2.5-flash"
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) Generate(ctx context.Context, req ai.Request, model string) (*ai.Response, error) {
	if !p.IsConfigured() {
		return nil, fmt.Errorf("gemini provider is not configured (missing API key)")
	}

	if model == "" {
		model = p.DefaultModel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)
	if req.Temperature > 0 {
		temperature := req.Temperature
		generativeModel.Temperature = &temperature
	}
	if req.MaxTokens > 0 {
		maxTokens := int32(req.MaxTokens)
		generativeModel.MaxOutputTokens = &maxTokens
	}

	start := time.Now()
	resp, err := generativeModel.GenerateContent(ctx, genai.Text(req.Prompt))
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &ai.Response{
		Text:       output,
		Model:      model,
		TokensUsed: tokensUsed,
		LatencyMs:  latency,
	}, nil
}
