// Package llm narrates deterministic hiring reports through an optional language model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

const systemInstruction = `You are an experienced technical recruiter and engineering manager.
You write short, factual hiring summaries from structured GitHub analysis data.
Only use facts present in the data. Do not invent employers, titles or numbers.`

// Provider generates text for a prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() schema.LLMProvider
	Model() string
}

// NewProvider builds the provider selected in cfg. It returns nil when no
// provider is configured.
func NewProvider(ctx context.Context, cfg *contract.Config) (Provider, error) {
	switch cfg.LLMProvider {
	case "", schema.NoProvider:
		return nil, nil
	case schema.OpenAIProvider, schema.GroqProvider, schema.OllamaProvider:
		return NewOpenAIProvider(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL, cfg.LLMTemperature, cfg.LLMMaxTokens), nil
	case schema.GeminiProvider:
		return NewGeminiProvider(ctx, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL, cfg.LLMTemperature, cfg.LLMMaxTokens)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

// OpenAIProvider talks to the OpenAI chat completions API or any endpoint
// compatible with it, such as Groq and Ollama.
type OpenAIProvider struct {
	client      *openai.Client
	name        schema.LLMProvider
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIProvider creates a provider for an OpenAI-compatible endpoint.
// An empty baseURL selects the OpenAI API.
func NewOpenAIProvider(name schema.LLMProvider, apiKey, model, baseURL string, temperature float64, maxTokens int) *OpenAIProvider {
	if apiKey == "" && name == schema.OllamaProvider {
		// Ollama ignores the key but the client always sends one.
		apiKey = "ollama"
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if model == "" {
		model = contract.DefaultLLMModels[name]
	}
	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		name:        name,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate sends the prompt as a single user message after the system instruction.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(p.temperature),
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s chat completion: %w", contract.ErrLLMUnavailable, p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %s returned no choices", contract.ErrLLMUnavailable, p.name)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: %s returned an empty response", contract.ErrLLMUnavailable, p.name)
	}
	return text, nil
}

// Name returns the configured provider name.
func (p *OpenAIProvider) Name() schema.LLMProvider { return p.name }

// Model returns the model used for completions.
func (p *OpenAIProvider) Model() string { return p.model }

// GeminiProvider wraps the Google GenAI client.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewGeminiProvider creates a provider for the Gemini API backend.
func NewGeminiProvider(ctx context.Context, apiKey, model, baseURL string, temperature float64, maxTokens int) (*GeminiProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = contract.DefaultLLMModels[schema.GeminiProvider]
	}
	return &GeminiProvider{client: client, model: model, temperature: temperature, maxTokens: maxTokens}, nil
}

// Generate sends the prompt and joins the text parts of every candidate.
func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(g.temperature)),
		MaxOutputTokens:   int32(g.maxTokens),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate content: %w", contract.ErrLLMUnavailable, err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("%w: gemini returned an empty response", contract.ErrLLMUnavailable)
	}
	return output, nil
}

// Name returns the gemini provider name.
func (g *GeminiProvider) Name() schema.LLMProvider { return schema.GeminiProvider }

// Model returns the model used for generation.
func (g *GeminiProvider) Model() string { return g.model }
