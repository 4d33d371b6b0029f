// Package enrich expands terse todo descriptions into richer text using a
// generative-language API. Enrichment is strictly best-effort: any failure
// along the way leaves the caller's text untouched.
package enrich

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/enrich_mock.go -package=mock

// ModelClient is the low-level contract for the generative-language API.
type ModelClient interface {
	// DiscoverModel returns the name of the first available model that
	// supports content generation.
	DiscoverModel(ctx context.Context) (string, error)

	// Generate runs the prompt against the named model and returns the
	// generated text.
	Generate(ctx context.Context, model, prompt string) (string, error)
}
