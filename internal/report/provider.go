package report

import "context"

// Provider is a text-completion backend for narrative coaching reports.
type Provider interface {
	// Complete sends a system prompt and one user message and returns the
	// model's text output.
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
	// Name identifies the backend in logs.
	Name() string
}
