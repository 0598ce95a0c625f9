package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

// Gemini implements Collaborator against Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: model, logger: logger}, nil
}

var domainRe = regexp.MustCompile(`([a-z0-9-]+\.)+[a-z]{2,}`)

func (g *Gemini) LookupBrandDomain(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf(`Identify the primary official website domain for the brand %q.
Output ONLY the raw domain name (e.g., brand.com).
Do not include "www", markdown, or any explanation.
If it's not a recognizable commercial brand, respond exactly with "none".`, name)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
	if err != nil {
		return "", fmt.Errorf("brand domain lookup: %w", err)
	}

	domain := parseBrandDomain(resp.Text())
	g.logger.Debug("brand domain lookup",
		zap.String("brand", name),
		zap.String("domain", domain))
	return domain, nil
}

// parseBrandDomain extracts a bare domain from model output, treating
// any "none" answer as no result.
func parseBrandDomain(text string) string {
	out := strings.ToLower(strings.TrimSpace(text))
	if out == "" || strings.Contains(out, "none") {
		return ""
	}
	domain := domainRe.FindString(out)
	return strings.TrimPrefix(domain, "www.")
}

func (g *Gemini) GenerateSubtasks(ctx context.Context, taskTitle string) ([]string, error) {
	prompt := fmt.Sprintf(`Break the task %q into 3 to 5 short, actionable steps.
Output one step per line with no numbering, bullets, or extra commentary.`, taskTitle)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate subtasks: %w", err)
	}

	titles := parseSubtaskTitles(resp.Text())
	g.logger.Debug("subtask generation",
		zap.String("task", taskTitle),
		zap.Int("count", len(titles)))
	return titles, nil
}

// parseSubtaskTitles splits model output into clean step titles,
// stripping any list markers the model added anyway. At most five
// titles are kept.
func parseSubtaskTitles(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.Trim(line, `"`)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == 5 {
			break
		}
	}
	return out
}
