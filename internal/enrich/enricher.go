package enrich

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

const promptTemplate = "Create a comprehensive description for this todo item: %s"

// DescriptionEnricher rewrites a todo description through the model client.
// It never returns an error: when anything fails the original description
// is returned unchanged, so a create can never be blocked by the API.
type DescriptionEnricher struct {
	client  ModelClient
	enabled bool

	logger *logger.Logger
}

// NewDescriptionEnricher wires the enricher from the application config.
// When no API key is configured the enricher is a no-op.
func NewDescriptionEnricher(cfg config.App, logger *logger.Logger) *DescriptionEnricher {
	if cfg.GoogleAPIKey == "" {
		logger.Debug().Msg("no API key configured, description enrichment disabled")
		return &DescriptionEnricher{enabled: false, logger: logger}
	}

	return &DescriptionEnricher{
		client:  NewGeminiClient(cfg.GoogleAPIKey, logger),
		enabled: true,
		logger:  logger,
	}
}

// NewDescriptionEnricherWithClient wires the enricher to an explicit model
// client.
func NewDescriptionEnricherWithClient(client ModelClient, logger *logger.Logger) *DescriptionEnricher {
	return &DescriptionEnricher{
		client:  client,
		enabled: client != nil,
		logger:  logger,
	}
}

// Enrich expands the given description. The model is re-discovered on every
// call; discovery failure falls back to [DefaultModel]. Generated markdown
// is stripped to plain text before being returned.
func (e *DescriptionEnricher) Enrich(ctx context.Context, description string) string {
	if !e.enabled {
		return description
	}

	log := logger.FromContext(ctx)

	model, err := e.client.DiscoverModel(ctx)
	if err != nil {
		log.Debug().Err(err).Str("fallback", DefaultModel).Msg("model discovery failed")
		model = DefaultModel
	}

	generated, err := e.client.Generate(ctx, model, fmt.Sprintf(promptTemplate, description))
	if err != nil {
		log.Warn().Err(err).Str("model", model).Msg("description enrichment failed, keeping original text")
		return description
	}

	plain := MarkdownToPlainText(generated)
	if plain == "" {
		return description
	}

	return plain
}
