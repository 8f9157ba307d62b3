package store

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/randresys/magic-pencil-guide/tutorial"
)

// ExportHTML renders a finished tutorial as a standalone HTML page. Step
// objectives and the description come from the model and may carry light
// markdown (emphasis, lists), so they go through goldmark rather than being
// escaped as plain text.
func ExportHTML(t *tutorial.Tutorial) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Drawing tutorial</title>\n")
	b.WriteString("<style>body{font-family:sans-serif;max-width:720px;margin:2em auto;padding:0 1em}img{max-width:100%}.step{margin:2em 0}</style>\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<h1>Drawing tutorial</h1>\n")
	if t.Sketch.ImageURL != "" {
		fmt.Fprintf(&b, "<img src=%q alt=\"reference sketch\">\n", t.Sketch.ImageURL)
	}
	desc, err := renderMarkdown(t.Sketch.Description)
	if err != nil {
		return "", err
	}
	b.WriteString(desc)

	for _, step := range t.Steps {
		b.WriteString("<div class=\"step\">\n")
		fmt.Fprintf(&b, "<h2>Step %d</h2>\n", step.Step)
		body, err := renderMarkdown(step.Description)
		if err != nil {
			return "", err
		}
		b.WriteString(body)
		if step.ImageURL != "" {
			fmt.Fprintf(&b, "<img src=%q alt=\"step %d\">\n", step.ImageURL, step.Step)
		} else {
			b.WriteString("<p><em>No image was generated for this step.</em></p>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func renderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
