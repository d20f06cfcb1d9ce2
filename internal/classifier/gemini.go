package classifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	DefaultModel = "gemini-2.5-flash-lite"

	geminiMessage = "Gemini vision analysis"
)

type generateFunc func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)

// Gemini asks a Gemini vision model for one of PlantClasses.
type Gemini struct {
	client   *genai.Client
	generate generateFunc
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(64)

	return &Gemini{
		client:   client,
		generate: model.GenerateContent,
	}, nil
}

func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *Gemini) Classify(ctx context.Context, img Image) (models.Diagnosis, error) {
	resp, err := g.generate(ctx, genai.ImageData(img.Format, img.Data), genai.Text(buildPrompt()))
	if err != nil {
		return models.Diagnosis{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return models.Diagnosis{}, fmt.Errorf("no content generated")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	diagnosis, err := parseSimpleLabel(text)
	if err != nil {
		return models.Diagnosis{}, fmt.Errorf("failed to parse label: %w", err)
	}
	return diagnosis, nil
}

// parseSimpleLabel reads a "label: X, confidence: Y" line. Labels outside
// PlantClasses are reported as healthy.
func parseSimpleLabel(text string) (models.Diagnosis, error) {
	text = strings.TrimSpace(text)

	data := make(map[string]string)
	for _, pair := range strings.Split(text, ", ") {
		parts := strings.SplitN(pair, ": ", 2)
		if len(parts) == 2 {
			key := strings.ToLower(strings.TrimSpace(parts[0]))
			data[key] = strings.TrimSpace(parts[1])
		}
	}

	label, ok := data["label"]
	if !ok || label == "" {
		return models.Diagnosis{}, fmt.Errorf("missing label in %q", text)
	}
	label = strings.ToLower(label)
	if !knownClass(label) {
		label = LabelHealthy
	}

	confidence, err := strconv.ParseFloat(data["confidence"], 64)
	if err != nil {
		return models.Diagnosis{}, fmt.Errorf("invalid confidence %q: %w", data["confidence"], err)
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return models.Diagnosis{
		Disease:    label,
		Confidence: confidence,
		Message:    geminiMessage,
	}, nil
}

func buildPrompt() string {
	return fmt.Sprintf(`You are a plant pathologist. Look at the crop leaf in this image and classify it.

The output MUST be a single line of text in the format "label: value, confidence: value" without any other text, markdown, or punctuation.

label: exactly one of %s
confidence: a number between 0 and 1

Example format: label: early_blight, confidence: 0.87`, strings.Join(PlantClasses, ", "))
}
