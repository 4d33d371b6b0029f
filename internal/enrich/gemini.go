package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModel is used whenever model discovery fails.
const DefaultModel = "gemini-1.5-flash"

type geminiClient struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// listModelsResponse mirrors GET /v1beta/models.
type listModelsResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

// generateContentRequest mirrors the body of POST /v1beta/models/{m}:generateContent.
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient constructs a [ModelClient] talking to the public
// generative-language REST API.
func NewGeminiClient(apiKey string, logger *logger.Logger) ModelClient {
	return newGeminiClient(defaultBaseURL, apiKey, logger)
}

// newGeminiClient allows the base URL to be pointed at a test server.
func newGeminiClient(baseURL, apiKey string, logger *logger.Logger) *geminiClient {
	client := utils.NewHTTPClient()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))

	return &geminiClient{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

// DiscoverModel implements [ModelClient]. It lists the available models and
// returns the first one whose supportedGenerationMethods contains
// "generateContent", with the "models/" name prefix stripped.
func (g *geminiClient) DiscoverModel(ctx context.Context) (string, error) {
	var listed listModelsResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetResult(&listed).
		Get("/v1beta/models")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: list models returned %d", ErrRequestFailed, resp.StatusCode())
	}

	for _, model := range listed.Models {
		for _, method := range model.SupportedGenerationMethods {
			if method == "generateContent" {
				return strings.TrimPrefix(model.Name, "models/"), nil
			}
		}
	}

	return "", ErrNoSuitableModel
}

// Generate implements [ModelClient]. It sends the prompt to the named model
// and returns the text of the first candidate.
func (g *geminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var generated generateContentResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&generated).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", model))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: generate content returned %d", ErrRequestFailed, resp.StatusCode())
	}

	if len(generated.Candidates) == 0 || len(generated.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCandidates
	}

	return generated.Candidates[0].Content.Parts[0].Text, nil
}
