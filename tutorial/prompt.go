package tutorial

import (
	"fmt"
	"strings"
)

const (
	// fillerStep pads a plan the model under-produced.
	fillerStep = "Continue adding details to your drawing."

	analysisPrompt = "Describe the main subject of this image for someone who wants to draw it. " +
		"Cover the overall shapes, the proportions, and the key features that make the subject recognizable. " +
		"Keep it under 120 words and output plain prose only."

	sketchConvert = "Convert the attached photo into that sketch. Keep only the main subject, drop the background, " +
		"and return the result as an image."
)

// genericStep is the objective used when the whole plan call failed.
func genericStep(i int) string {
	return fmt.Sprintf("Work on part %d of your drawing.", i)
}

// sketchStyle maps a difficulty to a style instruction. Anything outside the
// three known levels falls back to the plain monochrome default.
func sketchStyle(difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "beginner":
		return "Create a very simple monochrome pencil sketch with thick basic outlines and almost no interior detail, suitable for a complete beginner."
	case "intermediate":
		return "Create a moderately detailed monochrome pencil sketch with clean outlines and a few interior guide lines."
	case "advanced":
		return "Create a detailed monochrome pencil sketch with refined outlines, interior contours, and light pencil shading."
	default:
		return "Create a monochrome pencil sketch of the subject."
	}
}

func BuildSketchPrompt(difficulty string) string {
	return sketchStyle(difficulty) + " " + sketchConvert
}

func BuildAnalysisPrompt() string {
	return analysisPrompt
}

func BuildStepCountPrompt(description string) string {
	var sb strings.Builder
	sb.WriteString("You are planning a step-by-step pencil drawing tutorial. The attached image is the finished reference sketch.\n")
	sb.WriteString("Subject description:\n")
	sb.WriteString(description)
	sb.WriteString("\n\nClassify how complex this subject is to draw and answer with the number of tutorial steps it needs, ")
	sb.WriteString(fmt.Sprintf("between %d and %d.\n", minStepCount, maxStepCount))
	sb.WriteString("Respond with a single integer and nothing else.")
	return sb.String()
}

func BuildPlanPrompt(description string, totalSteps int) string {
	var sb strings.Builder
	sb.WriteString("Write the objectives for a pencil drawing tutorial. The attached image is the finished reference sketch.\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString(fmt.Sprintf("- Produce exactly %d steps as a numbered list.\n", totalSteps))
	sb.WriteString("- Every line must start with the step number followed by a period.\n")
	sb.WriteString("- One short imperative sentence per step, no extra commentary.\n")
	sb.WriteString("- Start from basic shapes and build toward the final details.\n")
	sb.WriteString("Subject description:\n")
	sb.WriteString(description)
	return sb.String()
}

// BuildStepPrompt constrains a step-image call to incremental progress. The
// first attached image is always the reference sketch; hasPrevious signals
// that the most recent step's output is attached as well.
func BuildStepPrompt(objective string, stepNumber, totalSteps int, hasPrevious bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are illustrating step %d of %d in a pencil drawing tutorial.\n", stepNumber, totalSteps))
	sb.WriteString("Current step objective: ")
	sb.WriteString(objective)
	sb.WriteString("\nRules:\n")
	sb.WriteString("- Draw ONLY what this step asks for. Do not anticipate later steps.\n")
	sb.WriteString("- The first attached image is the finished reference sketch; use it for overall shapes and proportions.\n")
	if hasPrevious {
		sb.WriteString("- The second attached image is the progress so far. Preserve everything already drawn and add this step on top.\n")
	}
	sb.WriteString("- Keep the monochrome pencil style. No color, no ink.\n")
	sb.WriteString("Return the updated drawing as an image.")
	return sb.String()
}
