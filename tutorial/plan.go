package tutorial

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"
)

const (
	minStepCount     = 8
	maxStepCount     = 20
	defaultStepCount = 12
)

var stepLineRe = regexp.MustCompile(`^\s*\d+\.\s*`)

// EstimateStepCount asks the model to classify drawing complexity as a step
// count. Any call or parse failure degrades to the default.
func (p *Pipeline) EstimateStepCount(ctx context.Context, sketch *Sketch, description string) int {
	res, err := p.model.Generate(ctx, GenerateRequest{
		Prompt: BuildStepCountPrompt(description),
		Images: []Attachment{{MIMEType: sketch.MIMEType, Data: sketch.Data}},
	})
	if err != nil {
		log.Printf("[estimate] model call failed, using default of %d: %v", defaultStepCount, err)
		return defaultStepCount
	}
	return parseStepCount(res.Text)
}

func parseStepCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < minStepCount || n > maxStepCount {
		return defaultStepCount
	}
	return n
}

// GeneratePlan asks the model for exactly totalSteps numbered objectives and
// normalizes whatever comes back to that length. A failed call yields a fully
// generic plan instead of aborting the tutorial.
func (p *Pipeline) GeneratePlan(ctx context.Context, sketch *Sketch, description string, totalSteps int) []string {
	res, err := p.model.Generate(ctx, GenerateRequest{
		Prompt: BuildPlanPrompt(description, totalSteps),
		Images: []Attachment{{MIMEType: sketch.MIMEType, Data: sketch.Data}},
	})
	if err != nil {
		log.Printf("[plan] model call failed, using generic plan: %v", err)
		return genericPlan(totalSteps)
	}
	return normalizePlan(parsePlanLines(res.Text), totalSteps)
}

// parsePlanLines keeps lines that start with "<digits>." in encountered
// order, numeral stripped. The numerals themselves are not trusted for
// ordering.
func parsePlanLines(raw string) []string {
	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		if !stepLineRe.MatchString(line) {
			continue
		}
		text := strings.TrimSpace(stepLineRe.ReplaceAllString(line, ""))
		if text != "" {
			steps = append(steps, text)
		}
	}
	return steps
}

// normalizePlan pads a short plan with the filler objective and truncates a
// long one, so the result always has exactly totalSteps entries.
func normalizePlan(steps []string, totalSteps int) []string {
	if len(steps) > totalSteps {
		steps = steps[:totalSteps]
	}
	for len(steps) < totalSteps {
		steps = append(steps, fillerStep)
	}
	return steps
}

func genericPlan(totalSteps int) []string {
	steps := make([]string, totalSteps)
	for i := range steps {
		steps[i] = genericStep(i + 1)
	}
	return steps
}
