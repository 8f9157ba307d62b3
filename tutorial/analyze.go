package tutorial

import (
	"context"
	"errors"
	"fmt"
)

// Analyze produces a free-text description of the uploaded image. Unlike the
// plan and step stages this has no fallback: without a description the later
// prompts have nothing to work from, so failure is fatal for the request.
func (p *Pipeline) Analyze(ctx context.Context, image []byte, mimeType string) (string, error) {
	res, err := p.model.Generate(ctx, GenerateRequest{
		Prompt: BuildAnalysisPrompt(),
		Images: []Attachment{{MIMEType: mimeType, Data: image}},
	})
	if err != nil {
		return "", fmt.Errorf("image analysis failed: %w", err)
	}
	if !res.HasText() {
		return "", errors.New("image analysis returned no text")
	}
	return res.Text, nil
}
