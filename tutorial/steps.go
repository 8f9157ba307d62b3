package tutorial

import (
	"context"
	"fmt"
	"log"
)

const recentWindowCapacity = 2

// recentImages is a bounded FIFO window of previously generated step images.
// The window retains up to two entries, but step prompts only ever consume
// the most recent one; the extra slot mirrors the observed behavior of the
// pipeline and is kept rather than silently widened.
type recentImages struct {
	capacity int
	entries  []Attachment
}

func newRecentImages(capacity int) *recentImages {
	return &recentImages{capacity: capacity}
}

func (r *recentImages) push(img Attachment) {
	r.entries = append(r.entries, img)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[1:]
	}
}

// latest returns the most recent entry, or a zero Attachment when empty.
func (r *recentImages) latest() (Attachment, bool) {
	if len(r.entries) == 0 {
		return Attachment{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func (r *recentImages) size() int { return len(r.entries) }

// GenerateStepImage produces the drawing for one step, conditioned on the
// reference sketch and at most one previous step image. All failures are
// non-fatal: the step simply ends up without an image and the window is left
// untouched.
func (p *Pipeline) GenerateStepImage(ctx context.Context, objective string, sketch *Sketch, recent *recentImages, stepNumber, totalSteps int) *StepImage {
	images := []Attachment{{MIMEType: sketch.MIMEType, Data: sketch.Data}}
	prev, hasPrev := recent.latest()
	if hasPrev {
		images = append(images, prev)
	}

	res, err := p.model.Generate(ctx, GenerateRequest{
		Prompt: BuildStepPrompt(objective, stepNumber, totalSteps, hasPrev),
		Images: images,
	})
	if err != nil {
		log.Printf("[step] generation failed for step %d/%d: %v", stepNumber, totalSteps, err)
		return nil
	}
	if !res.HasImage() {
		log.Printf("[step] no image part for step %d/%d", stepNumber, totalSteps)
		return nil
	}

	url, err := p.artifacts.SaveArtifact(res.Image, res.ImageMIME, fmt.Sprintf("step_%d", stepNumber))
	if err != nil {
		log.Printf("[step] saving step %d image: %v", stepNumber, err)
		return nil
	}
	return &StepImage{URL: url, Data: res.Image, MIMEType: res.ImageMIME}
}
