package tutorial

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "models/gemini-2.5-flash-image-preview"

// GeminiModel implements ModelClient using the official google genai SDK.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, cfg *ModelSettings) (*GeminiModel, error) {
	if cfg == nil {
		return nil, errors.New("model config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key missing; provide model.api_key or GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiModel{client: client, model: geminiModelName(cfg.Model)}, nil
}

// geminiModelName normalizes a configured model to a full resource name,
// accepting "gemini-x", "google/gemini-x" and "models/gemini-x" forms.
func geminiModelName(model string) string {
	m := strings.TrimSpace(model)
	if m == "" {
		return defaultGeminiModel
	}
	if strings.HasPrefix(m, "models/") {
		return m
	}
	m = strings.TrimPrefix(m, "google/")
	return "models/" + m
}

func (g *GeminiModel) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	parts := make([]*genai.Part, 0, 1+len(req.Images))
	if s := strings.TrimSpace(req.Prompt); s != "" {
		parts = append(parts, genai.NewPartFromText(s))
	}
	for _, img := range req.Images {
		mime := img.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: mime, Data: img.Data}})
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return GenerateResult{}, err
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return GenerateResult{}, errors.New("gemini: empty candidates")
	}

	var out GenerateResult
	var text strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && out.Image == nil {
			out.Image = part.InlineData.Data
			out.ImageMIME = part.InlineData.MIMEType
			if out.ImageMIME == "" {
				out.ImageMIME = "image/png"
			}
		}
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	out.Text = strings.TrimSpace(text.String())
	return out, nil
}
