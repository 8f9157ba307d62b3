package tutorial

import (
	"context"
	"errors"
	"log"
)

// Pipeline runs the end-to-end tutorial generation for one request. All
// intermediate state lives in local variables of Generate; nothing is shared
// across requests.
type Pipeline struct {
	model     ModelClient
	artifacts ArtifactSaver
}

func NewPipeline(model ModelClient, artifacts ArtifactSaver) (*Pipeline, error) {
	if model == nil {
		return nil, errors.New("model client is required")
	}
	if artifacts == nil {
		return nil, errors.New("artifact store is required")
	}
	return &Pipeline{model: model, artifacts: artifacts}, nil
}

// Generate turns one uploaded image into a complete tutorial:
// sketch -> analysis -> step count -> plan -> sequential step images ->
// narration stubs. The chain is inherently sequential: every step-image call
// conditions on the previous call's output.
func (p *Pipeline) Generate(ctx context.Context, image []byte, mimeType, difficulty string) (*Tutorial, error) {
	sketch, err := p.SynthesizeSketch(ctx, image, mimeType, difficulty)
	if err != nil {
		return nil, err
	}
	if sketch == nil {
		return nil, errors.New("model did not return a reference sketch")
	}

	description, err := p.Analyze(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	total := p.EstimateStepCount(ctx, sketch, description)
	plan := p.GeneratePlan(ctx, sketch, description, total)
	log.Printf("[pipeline] generating %d steps", total)

	steps := make([]*StepRecord, 0, total)
	recent := newRecentImages(recentWindowCapacity)
	for i, objective := range plan {
		rec := &StepRecord{Step: i + 1, Description: objective}
		if img := p.GenerateStepImage(ctx, objective, sketch, recent, i+1, total); img != nil {
			rec.ImageURL = img.URL
			recent.push(Attachment{MIMEType: img.MIMEType, Data: img.Data})
		}
		steps = append(steps, rec)
	}

	t := &Tutorial{
		Sketch: SketchInfo{
			ImageURL:    sketch.URL,
			Description: description,
			Audio:       Narrate(description),
		},
		Steps: steps,
	}
	for _, rec := range t.Steps {
		rec.Audio = Narrate(rec.Description)
	}
	return t, nil
}
