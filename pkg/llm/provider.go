package llm

import "context"

// Message is one chat turn in a provider-agnostic shape. Role is one of
// "user", "assistant" or "system".
type Message struct {
	Role    string
	Content string
}

// Options tunes a single call. Zero values mean provider defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract for any text generation backend.
type LLMProvider interface {
	// Chat sends a conversation to the model and returns the reply text.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate is the single-prompt convenience form of Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
