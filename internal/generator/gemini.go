package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"newsrunner/internal/config"
	"newsrunner/internal/models"
)

// defaultGeminiModel is used when the config leaves the model empty.
const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider generates articles with the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// Ensure GeminiProvider implements Provider.
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a Gemini-backed provider. It fails fast when the
// API key is missing so the run aborts before anything is written.
func NewGeminiProvider(ctx context.Context, cfg config.ProviderConfig) (*GeminiProvider, error) {
	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Generate asks Gemini for count articles and decodes the JSON response.
func (p *GeminiProvider) Generate(ctx context.Context, region models.Region, category string, count int) ([]models.Article, error) {
	prompt := BuildPrompt(region, category, count)

	resp, err := p.client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr(float32(0.9)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("Gemini generate failed for %s/%s: %w", region.Key, category, err)
	}

	articles, err := ParseArticles(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("response for %s/%s: %w", region.Key, category, err)
	}

	return articles, nil
}

// Name returns the provider name with its model.
func (p *GeminiProvider) Name() string {
	return fmt.Sprintf("gemini:%s", p.model)
}

// Close is a no-op; the genai client manages its own HTTP transport.
func (p *GeminiProvider) Close() error {
	return nil
}
