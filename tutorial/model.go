package tutorial

import "context"

// ModelClient abstracts the generative model service, to allow swapping
// providers and mocking in tests.
type ModelClient interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}

// ModelSettings holds the provider configuration handed to concrete clients.
type ModelSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// Attachment is an inline image sent to the model as context.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// GenerateRequest is a single model call: one prompt plus optional inline
// reference images.
type GenerateRequest struct {
	Prompt string
	Images []Attachment
}

// GenerateResult is the typed outcome of a model call. Provider wire shapes
// are decoded exactly once, in the client implementations; everything above
// them works with this variant.
type GenerateResult struct {
	Text      string
	Image     []byte
	ImageMIME string
}

func (r GenerateResult) HasImage() bool { return len(r.Image) > 0 }

func (r GenerateResult) HasText() bool { return r.Text != "" }

// ArtifactSaver persists a generated binary payload and returns its public
// path. Satisfied by store.ArtifactStore.
type ArtifactSaver interface {
	SaveArtifact(data []byte, mimeType, baseName string) (string, error)
}
