package model

import "context"

// Generator is the single external text-generation capability behind resume
// generation, inclusive job-description rewriting and the chat assistant.
// Implementations do not retry; a failed call surfaces to the caller as is.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
