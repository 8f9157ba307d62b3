package tutorial

import (
	"context"
	"fmt"
	"log"
)

// SynthesizeSketch converts the upload into the monochrome reference sketch.
// A response without an inline image yields (nil, nil); the orchestrator
// treats a missing sketch as fatal because every later call depends on it.
func (p *Pipeline) SynthesizeSketch(ctx context.Context, image []byte, mimeType, difficulty string) (*Sketch, error) {
	res, err := p.model.Generate(ctx, GenerateRequest{
		Prompt: BuildSketchPrompt(difficulty),
		Images: []Attachment{{MIMEType: mimeType, Data: image}},
	})
	if err != nil {
		return nil, fmt.Errorf("sketch synthesis failed: %w", err)
	}
	if !res.HasImage() {
		log.Printf("[sketch] model returned no image part")
		return nil, nil
	}
	url, err := p.artifacts.SaveArtifact(res.Image, res.ImageMIME, "sketch")
	if err != nil {
		return nil, fmt.Errorf("saving sketch: %w", err)
	}
	return &Sketch{URL: url, Data: res.Image, MIMEType: res.ImageMIME}, nil
}
