package generation

import (
	"context"
	"errors"
)

// ErrDisabled is returned when the server runs without a generation API key.
var ErrDisabled = errors.New("generation is not configured")

// Disabled is a Generator used when no API key is configured. Every call
// fails with ErrDisabled, which services surface as an external failure.
type Disabled struct{}

// NewDisabled creates a Disabled generator.
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Generate always fails with ErrDisabled.
func (d *Disabled) Generate(_ context.Context, _ string) (string, error) {
	return "", ErrDisabled
}
