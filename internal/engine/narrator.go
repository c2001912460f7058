package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/doll-chores/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/night_recap.txt
var nightRecapPrompt string

var recapTemplate = template.Must(template.New("night_recap").Parse(nightRecapPrompt))

// RecapLine pairs a resolved task with its display name.
type RecapLine struct {
	Task   string
	Result models.TaskResult
}

// NightReport is what a narrator sees after a night is scored.
type NightReport struct {
	Night         int
	DollItems     []string
	Lines         []RecapLine
	Delta         int
	TotalPoints   int
	VictoryPoints int
	Progress      float64
	Victory       bool
}

// Narrator writes the morning recap shown at the boons step.
type Narrator interface {
	Recap(ctx context.Context, r NightReport) (string, error)
}

// StaticNarrator summarizes the night without any outside help.
type StaticNarrator struct{}

func (StaticNarrator) Recap(_ context.Context, r NightReport) (string, error) {
	counts := map[models.Outcome]int{}
	for _, l := range r.Lines {
		counts[l.Result.Outcome]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The witch walks through the hut. The doll finished %d chores, half-finished %d and botched %d. ",
		counts[models.OutcomeSuccess], counts[models.OutcomePartial], counts[models.OutcomeFail])
	fmt.Fprintf(&b, "You earn %d points (%d of %d).", r.Delta, r.TotalPoints, r.VictoryPoints)
	if r.Victory {
		b.WriteString(" She can find nothing left to fault.")
	}
	return b.String(), nil
}

// GeminiNarrator asks Gemini to tell the morning inspection.
type GeminiNarrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiNarrator(ctx context.Context, apiKey, modelName string) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiNarrator{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (n *GeminiNarrator) Close() error {
	return n.client.Close()
}

func (n *GeminiNarrator) Recap(ctx context.Context, r NightReport) (string, error) {
	prompt, err := renderRecapPrompt(r)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	return strings.TrimSpace(string(text)), nil
}

func renderRecapPrompt(r NightReport) (string, error) {
	var buf bytes.Buffer
	if err := recapTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render recap prompt: %w", err)
	}
	return buf.String(), nil
}
