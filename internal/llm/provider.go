package llm

import (
	"context"
	"errors"
)

// errSchemaStream rejects GenerateStream calls carrying a Schema:
// structured output arrives as one document, not fragments.
var errSchemaStream = errors.New("schema-constrained requests cannot be streamed")

// Provider is the core abstraction for LLM interaction. Implementations
// exist for Anthropic, OpenAI and Gemini; decorators add retry and event
// logging.
type Provider interface {
	// Generate sends a prompt and returns the complete response. When
	// the request carries a Schema, the response Content is JSON
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// GenerateStream sends a prompt and returns a stream of text
	// fragments as the provider produces them. The stream is finite and
	// not restartable; abandoning it early is a normal termination mode.
	// Schema-constrained requests are not streamable.
	GenerateStream(ctx context.Context, req Request) (Stream, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Stream is a finite, non-restartable sequence of text fragments.
// Recv returns io.EOF after the final fragment. Close releases the
// underlying connection and may be called at any time to abandon the
// stream.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the ordered conversation history.
	Messages []Message

	// Image optionally attaches an image to the last user message.
	Image *Image

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism
	// and the response Content is the validated JSON text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Image is an inline image attachment.
type Image struct {
	// MediaType is the MIME type, e.g. "image/png".
	MediaType string

	// Base64 is the base64-encoded image data.
	Base64 string
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "problem-classification".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's complete output.
type Response struct {
	// Content is the generated text. For schema requests this is the
	// validated JSON document.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
