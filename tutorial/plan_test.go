package tutorial

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStepCount(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"12", 12},
		{" 15 \n", 15},
		{"8", 8},
		{"20", 20},
		{"7", 12},
		{"21", 12},
		{"-3", 12},
		{"", 12},
		{"about 10 steps", 12},
		{"10.5", 12},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseStepCount(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParsePlanLinesKeepsEncounteredOrder(t *testing.T) {
	raw := "Here is your plan:\n" +
		"3. Draw the head\n" +
		"1. Sketch the body outline\n" +
		"not a step\n" +
		"2. Add the legs\n"
	got := parsePlanLines(raw)
	require.Equal(t, []string{"Draw the head", "Sketch the body outline", "Add the legs"}, got)
}

func TestParsePlanLinesSkipsEmptyObjectives(t *testing.T) {
	raw := "1. First\n2.   \n3. Third"
	got := parsePlanLines(raw)
	require.Equal(t, []string{"First", "Third"}, got)
}

func TestNormalizePlanPadsWithFiller(t *testing.T) {
	got := normalizePlan([]string{"one", "two"}, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "one", got[0])
	assert.Equal(t, "two", got[1])
	for _, s := range got[2:] {
		assert.Equal(t, fillerStep, s)
	}
}

func TestNormalizePlanTruncates(t *testing.T) {
	got := normalizePlan([]string{"a", "b", "c", "d"}, 2)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestGeneratePlanFallsBackToGenericPlan(t *testing.T) {
	model := &MockModel{Script: []MockReply{{Err: errors.New("model down")}}}
	p, err := NewPipeline(model, &fakeSaver{})
	require.NoError(t, err)

	sketch := &Sketch{Data: []byte("sketch"), MIMEType: "image/png"}
	got := p.GeneratePlan(context.Background(), sketch, "a cat", 4)
	require.Len(t, got, 4)
	for i, s := range got {
		assert.Equal(t, fmt.Sprintf("Work on part %d of your drawing.", i+1), s)
	}
}

func TestGeneratePlanPadsShortModelOutput(t *testing.T) {
	model := &MockModel{Script: []MockReply{
		{Result: GenerateResult{Text: "1. Outline the body\n2. Add the head"}},
	}}
	p, err := NewPipeline(model, &fakeSaver{})
	require.NoError(t, err)

	sketch := &Sketch{Data: []byte("sketch"), MIMEType: "image/png"}
	got := p.GeneratePlan(context.Background(), sketch, "a cat", 4)
	require.Equal(t, []string{"Outline the body", "Add the head", fillerStep, fillerStep}, got)
}

func TestEstimateStepCountDefaultsOnCallFailure(t *testing.T) {
	model := &MockModel{Script: []MockReply{{Err: errors.New("model down")}}}
	p, err := NewPipeline(model, &fakeSaver{})
	require.NoError(t, err)

	sketch := &Sketch{Data: []byte("sketch"), MIMEType: "image/png"}
	assert.Equal(t, defaultStepCount, p.EstimateStepCount(context.Background(), sketch, "a cat"))
}
