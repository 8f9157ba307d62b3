package tutorial

// Tutorial is the finished guide returned to the caller. It is assembled once
// at the end of the pipeline and not mutated afterwards.
type Tutorial struct {
	ID     string        `json:"tutorialId"`
	Sketch SketchInfo    `json:"sketch"`
	Steps  []*StepRecord `json:"steps"`
}

// SketchInfo is the public view of the reference sketch.
type SketchInfo struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Audio       string `json:"audio"`
}

// StepRecord is one tutorial step. ImageURL is empty when the model produced
// no image for the step; the front end renders a placeholder in that case.
type StepRecord struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Audio       string `json:"audio"`
}

// Sketch is the internal reference sketch: the stored public path plus the raw
// bytes, which are re-sent as visual context on every later generation call.
type Sketch struct {
	URL      string
	Data     []byte
	MIMEType string
}

// StepImage is the result of one step-image generation.
type StepImage struct {
	URL      string
	Data     []byte
	MIMEType string
}
