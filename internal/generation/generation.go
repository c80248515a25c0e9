// Package generation is the boundary to the remote generative-language service.
//
// A single Generator is constructed at process start and handed to each
// orchestrator; tests substitute generationtest.Fake.
package generation

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var ErrUnavailable = errors.New("generation service unavailable")

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one prior message replayed to the model.
type Turn struct {
	Role Role
	Text string
}

type ChatRequest struct {
	SystemInstruction string
	History           []Turn
	Message           string
}

type Generator interface {
	// Generate is a one-shot text generation.
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateJSON constrains the response to the given schema and returns the raw JSON text.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// StreamChat opens one streaming response. Failures arrive as an EventError on the stream.
	StreamChat(ctx context.Context, req ChatRequest) *Stream
}
