package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"google.golang.org/genai"
)

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// New builds the Gemini-backed generator. When the client cannot be created,
// typically because the credential is empty, it returns a generator whose
// every call fails so the error surfaces per request rather than at startup.
func New(ctx context.Context, apiKey, model string) Generator {
	log := config.WithContext(ctx)
	if model == "" {
		model = config.DefaultModel
	}
	if apiKey == "" {
		log.Warn("API key not set; generation calls will fail")
		return Instrument(unavailable{cause: ErrUnavailable})
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.WithError(err).Warn("Gemini client unavailable; generation calls will fail")
		return Instrument(unavailable{cause: err})
	}

	log.WithField("model", model).Info("Gemini client ready")
	return Instrument(&geminiGenerator{client: client, model: model})
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return result.Text(), nil
}

func (g *geminiGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate json content: %w", err)
	}
	return result.Text(), nil
}

func (g *geminiGenerator) StreamChat(ctx context.Context, req ChatRequest) *Stream {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: textContent(string(RoleUser), req.SystemInstruction),
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, textContent(string(turn.Role), turn.Text))
	}
	contents = append(contents, textContent(string(RoleUser), req.Message))

	return NewStream(ctx, func(ctx context.Context, emit func(string) bool) error {
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, cfg) {
			if err != nil {
				return fmt.Errorf("stream content: %w", err)
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			if !emit(text) {
				return ctx.Err()
			}
		}
		return nil
	})
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{{Text: text}},
	}
}

type unavailable struct {
	cause error
}

func (u unavailable) err() error {
	if errors.Is(u.cause, ErrUnavailable) {
		return u.cause
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}

func (u unavailable) Generate(context.Context, string) (string, error) {
	return "", u.err()
}

func (u unavailable) GenerateJSON(context.Context, string, *genai.Schema) (string, error) {
	return "", u.err()
}

func (u unavailable) StreamChat(ctx context.Context, _ ChatRequest) *Stream {
	return Failed(ctx, u.err())
}
