package tutorial

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"
)

// OpenAIModel implements ModelClient against OpenAI-compatible chat endpoints
// (including gateways that return generated images in message.images).
type OpenAIModel struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAIModelFromConfig(cfg *ModelSettings) (*OpenAIModel, error) {
	if cfg == nil {
		return nil, errors.New("model config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide model.api_key or OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("model name is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIModel{Model: cfg.Model, Opts: opts}, nil
}

func (o *OpenAIModel) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	client := openai.NewClient(o.Opts...)

	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, 1+len(req.Images))
	parts = append(parts, openai.TextContentPart(req.Prompt))
	for _, img := range req.Images {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: toDataURL(img),
		}))
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(parts)},
	})
	if err != nil {
		return GenerateResult{}, err
	}
	if len(resp.Choices) == 0 {
		return GenerateResult{}, errors.New("openai: empty choices")
	}

	msg := resp.Choices[0].Message
	out := GenerateResult{Text: strings.TrimSpace(msg.Content)}

	// Image-capable gateways attach generated images as data URLs under
	// message.images, which the typed response does not model.
	raw := msg.RawJSON()
	if u := gjson.Get(raw, "images.0.image_url.url").String(); strings.HasPrefix(u, "data:") {
		if data, mime, derr := decodeDataURL(u); derr == nil {
			out.Image = data
			out.ImageMIME = mime
		}
	}
	return out, nil
}

func toDataURL(img Attachment) string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data))
}

func decodeDataURL(u string) ([]byte, string, error) {
	i := strings.IndexByte(u, ',')
	if i <= 0 {
		return nil, "", errors.New("malformed data url")
	}
	data, err := base64.StdEncoding.DecodeString(u[i+1:])
	if err != nil {
		return nil, "", err
	}
	mime := strings.TrimPrefix(u[:i], "data:")
	if j := strings.IndexByte(mime, ';'); j >= 0 {
		mime = mime[:j]
	}
	if mime == "" {
		mime = "image/png"
	}
	return data, mime, nil
}
